package models

import (
	"time"

	"wareflow-app/types"

	"gorm.io/gorm"
)

const (
	WorkOrderOpen       = "open"
	WorkOrderInProgress = "in_progress"
	WorkOrderDone       = "done"
)

// WorkOrder tracks field/maintenance jobs against a machine.
type WorkOrder struct {
	gorm.Model
	WoNo          string            `json:"wo_no" gorm:"unique"` // WO20250101-0001
	RefID         types.SnowflakeID `json:"ref_id"`
	MachineCode   string            `json:"machine_code"`
	LocationCode  string            `json:"location_code"`
	FieldOrCrop   string            `json:"field_or_crop"`
	Description   string            `json:"description"`
	Status        string            `json:"status" gorm:"default:'open'"`
	ScheduledDate time.Time         `json:"scheduled_date"`
	CompletedDate *time.Time        `json:"completed_date"`
	CompletedNote string            `json:"completed_note"`
	AssignedTo    int               `json:"assigned_to"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

type MaintenancePlan struct {
	gorm.Model
	MachineCode  string     `json:"machine_code"`
	Task         string     `json:"task"`
	IntervalDays int        `json:"interval_days" gorm:"default:30"`
	LastDone     *time.Time `json:"last_done"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

// NextDue derives the next due date from the last completion, or returns
// the zero time when the plan has never run.
func (p *MaintenancePlan) NextDue() time.Time {
	if p.LastDone == nil {
		return time.Time{}
	}
	return p.LastDone.AddDate(0, 0, p.IntervalDays)
}

package models

import (
	"time"

	"wareflow-app/types"

	"gorm.io/gorm"
)

const (
	IssueStatusOpen     = "open"
	IssueStatusApproved = "approved"
	IssueStatusRejected = "rejected"
	IssueStatusIssued   = "issued"
)

type IssueRequest struct {
	gorm.Model
	IssueNo      string            `json:"issue_no" gorm:"unique"` // IR20250101-0001
	RefID        types.SnowflakeID `json:"ref_id"`
	LocationCode string            `json:"location_code"`
	SectorCode   string            `json:"sector_code"`
	DivisionCode string            `json:"division_code"`
	RequestedBy  int               `json:"requested_by"`
	ApprovedBy   int               `json:"approved_by"`
	Status       string            `json:"status" gorm:"default:'open'"`
	Remarks      string            `json:"remarks"`
	Details      []IssueRequestDetail `json:"details" gorm:"foreignKey:IssueRequestID"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

type IssueRequestDetail struct {
	gorm.Model
	IssueRequestID uint    `json:"issue_request_id"`
	ItemCode       string  `json:"item_code"`
	Quantity       float64 `json:"quantity" gorm:"default:0"`
	Remarks        string  `json:"remarks"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

// IssueRecord is the append-only consumption history consumed by the
// variance reconciler. Rows are posted when a request is issued or by the
// sync processor; they are never updated.
type IssueRecord struct {
	gorm.Model
	IssueNo      string    `json:"issue_no"`
	Timestamp    time.Time `json:"timestamp"`
	LocationCode string    `json:"location_code"`
	ItemCode     string    `json:"item_code"`
	Quantity     float64   `json:"quantity" gorm:"default:0"`
	IssuedTo     string    `json:"issued_to"`
	Source       string    `json:"source"` // "app" atau "sync"
	CreatedBy    int
}

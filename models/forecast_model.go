package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PeriodOpen   = "Open"
	PeriodClosed = "Closed"
)

// ForecastPeriod is a named calendar window. Status gates ledger edits.
type ForecastPeriod struct {
	gorm.Model
	PeriodCode string    `json:"period_code" gorm:"unique"` // contoh: "2025-P1"
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status" gorm:"default:'Open'"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}

// ForecastRecord is one ledger entry. Natural key is
// (location_code, division_code, item_code, period_code); sector_code is a
// denormalized display field and never part of lookups.
type ForecastRecord struct {
	gorm.Model
	LocationCode string    `json:"location_code" gorm:"uniqueIndex:idx_forecast_key"`
	SectorCode   string    `json:"sector_code"`
	DivisionCode string    `json:"division_code" gorm:"uniqueIndex:idx_forecast_key"`
	ItemCode     string    `json:"item_code" gorm:"uniqueIndex:idx_forecast_key"`
	PeriodCode   string    `json:"period_code" gorm:"uniqueIndex:idx_forecast_key"`
	Quantity     float64   `json:"quantity" gorm:"default:0"`
	LastUpdated  time.Time `json:"last_updated"`
	UpdatedByID  int       `json:"updated_by_id"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

package models

import "gorm.io/gorm"

// StockBalance is the per-location on-hand quantity of an item.
type StockBalance struct {
	gorm.Model
	LocationCode string  `json:"location_code" gorm:"uniqueIndex:idx_stock_key"`
	ItemCode     string  `json:"item_code" gorm:"uniqueIndex:idx_stock_key"`
	QtyOnhand    float64 `json:"qty_onhand" gorm:"default:0"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

const (
	AdjustmentPending  = "pending"
	AdjustmentApproved = "approved"
	AdjustmentRejected = "rejected"
)

// StockAdjustment is a counted correction awaiting approval before it is
// posted into StockBalance.
type StockAdjustment struct {
	gorm.Model
	LocationCode string  `json:"location_code"`
	ItemCode     string  `json:"item_code"`
	QtyCounted   float64 `json:"qty_counted"`
	QtySystem    float64 `json:"qty_system"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status" gorm:"default:'pending'"`
	ApprovedBy   int     `json:"approved_by"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

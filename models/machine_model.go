package models

import "gorm.io/gorm"

type Machine struct {
	gorm.Model
	MachineCode  string `json:"machine_code" gorm:"unique"`
	Category     string `json:"category"`
	ModelNo      string `json:"model_no"`
	Brand        string `json:"brand"`
	SerialNo     string `json:"serial_no"`
	LocationCode string `json:"location_code"` // canonical code after master load
	SectorCode   string `json:"sector_code"`
	DivisionCode string `json:"division_code"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

// BOMRecord declares that one unit of category/model consumes Quantity of ItemCode.
type BOMRecord struct {
	gorm.Model
	MachineCategory string  `json:"machine_category"`
	ModelNo         string  `json:"model_no"`
	ItemCode        string  `json:"item_code"`
	Quantity        float64 `json:"quantity" gorm:"default:0"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}

package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	ItemCode   string  `json:"item_code" gorm:"unique"`
	ItemName   string  `json:"item_name"`
	Uom        string  `json:"uom"`
	BaseUomID  uint    `json:"base_uom_id"` // foreign key ke uoms
	BaseUom    Uom     `gorm:"foreignKey:BaseUomID"`
	PartNumber string  `json:"part_number"`
	Brand      string  `json:"brand"`
	Group      string  `json:"group"`
	Category   string  `json:"category"`
	MinLevel   float64 `json:"min_level" gorm:"default:0"`
	MaxLevel   float64 `json:"max_level" gorm:"default:0"`
	IsAdHoc    bool    `json:"is_ad_hoc" gorm:"default:false"` // always shown in Other Items
	Remarks    string  `json:"remarks"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}

type Uom struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"unique" json:"code"` // contoh: "PCS", "BOX", "LTR"
	Name string `json:"name"`
}

package models

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	LocationCode string `json:"location_code" gorm:"unique"`
	Name         string `json:"name"`
	Region       string `json:"region"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

type Sector struct {
	gorm.Model
	SectorCode   string `json:"sector_code" gorm:"unique"`
	Name         string `json:"name"`
	LocationCode string `json:"location_code"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

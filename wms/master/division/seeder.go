package division

import (
	"gorm.io/gorm"
)

func SeedDivision(db *gorm.DB) {
	divisions := []Division{
		{Code: "DIV-001", Name: "Plantation", Description: "Plantation operations"},
		{Code: "DIV-002", Name: "Milling", Description: "Mill and processing"},
		{Code: "DIV-003", Name: "Workshop", Description: "Workshop and maintenance"},
	}

	for _, d := range divisions {
		var existing Division
		if err := db.Where("code = ?", d.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&d)
			}
		}
	}
}

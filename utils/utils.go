package utils

import (
	"wareflow-app/models"

	"gorm.io/gorm"
)

func InsertFileLog(db *gorm.DB, log models.FileLog) {
	db.Create(&log)
}

// IsFileProcessed cek apakah nama file sudah ada di file_logs.
func IsFileProcessed(db *gorm.DB, filename string) bool {
	var existing models.FileLog
	return db.Where("filename = ?", filename).First(&existing).Error == nil
}

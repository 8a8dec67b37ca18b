package migration

import (
	"wareflow-app/models"
	"wareflow-app/wms/master/division"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Item{},
		&models.Uom{},
		&models.Machine{},
		&models.BOMRecord{},
		&models.Location{},
		&models.Sector{},
		&division.Division{},
		&models.ForecastPeriod{},
		&models.ForecastRecord{},
		&models.IssueRequest{},
		&models.IssueRequestDetail{},
		&models.IssueRecord{},
		&models.StockBalance{},
		&models.StockAdjustment{},
		&models.WorkOrder{},
		&models.MaintenancePlan{},
		&models.FileLog{},
	)
}

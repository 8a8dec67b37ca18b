package seed

import (
	"fmt"
	"time"

	"wareflow-app/models"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

func SeedUoms(db *gorm.DB) {
	uoms := []models.Uom{
		{Code: "PCS", Name: "Piece"},
		{Code: "LTR", Name: "Liter"},
		{Code: "SET", Name: "Set"},
		{Code: "KG", Name: "Kilogram"},
	}

	for _, u := range uoms {
		var existing models.Uom
		if err := db.Where("code = ?", u.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&u)
			}
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	admin := models.User{
		Username: "admin",
		Name:     "Administrator",
		Email:    "admin@wareflow.local",
		Password: string(hashed),
		Role:     "admin",
		IsAdmin:  true,
	}
	db.Create(&admin)
}

func SeedLocations(db *gorm.DB) {
	locations := []models.Location{
		{LocationCode: "EST-A", Name: "Estate A", Region: "North"},
		{LocationCode: "EST-B", Name: "Estate B", Region: "South"},
	}

	for _, l := range locations {
		var existing models.Location
		if err := db.Where("location_code = ?", l.LocationCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&l)
			}
		}
	}
}

func SeedSectors(db *gorm.DB) {
	sectors := []models.Sector{
		{SectorCode: "SEC-01", Name: "Sector 1", LocationCode: "EST-A"},
		{SectorCode: "SEC-02", Name: "Sector 2", LocationCode: "EST-A"},
		{SectorCode: "SEC-03", Name: "Sector 3", LocationCode: "EST-B"},
	}

	for _, s := range sectors {
		var existing models.Sector
		if err := db.Where("sector_code = ?", s.SectorCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&s)
			}
		}
	}
}

func SeedCurrentPeriod(db *gorm.DB) {
	now := time.Now()
	code := fmt.Sprintf("%d-P%d", now.Year(), int(now.Month()))

	var existing models.ForecastPeriod
	if err := db.Where("period_code = ?", code).First(&existing).Error; err == nil {
		return
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	period := models.ForecastPeriod{
		PeriodCode: code,
		Name:       start.Format("January 2006"),
		StartDate:  start,
		EndDate:    start.AddDate(0, 1, 0).Add(-time.Second),
		Status:     models.PeriodOpen,
	}
	db.Create(&period)
}

// SeedDemoStock isi saldo awal acak untuk item yang sudah ada, hanya
// untuk lingkungan dev.
func SeedDemoStock(db *gorm.DB) {
	var count int64
	db.Model(&models.StockBalance{}).Count(&count)
	if count > 0 {
		return
	}

	var items []models.Item
	db.Limit(20).Find(&items)

	var locations []models.Location
	db.Find(&locations)

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	for _, loc := range locations {
		for _, item := range items {
			balance := models.StockBalance{
				LocationCode: loc.LocationCode,
				ItemCode:     item.ItemCode,
				QtyOnhand:    float64(rng.Intn(50)),
			}
			db.Create(&balance)
		}
	}
}

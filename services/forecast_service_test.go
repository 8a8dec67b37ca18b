package services

import (
	"testing"
	"time"

	"wareflow-app/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupForecastTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to connect to test database")
	}

	err = db.AutoMigrate(
		&models.Item{},
		&models.Location{},
		&models.ForecastPeriod{},
		&models.ForecastRecord{},
	)
	assert.NoError(t, err)

	items := []models.Item{
		{ItemCode: "ITM-001", ItemName: "Engine Oil", Uom: "LTR"},
		{ItemCode: "ITM-002", ItemName: "Air Filter", Uom: "PCS"},
	}
	for i := range items {
		db.Create(&items[i])
	}

	locations := []models.Location{
		{LocationCode: "EST-A", Name: "Estate A"},
		{LocationCode: "EST-B", Name: "Estate B"},
	}
	for i := range locations {
		db.Create(&locations[i])
	}

	periods := []models.ForecastPeriod{
		{
			PeriodCode: "2025-P1",
			StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
			Status:     models.PeriodOpen,
		},
		{
			PeriodCode: "2024-P12",
			StartDate:  time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			Status:     models.PeriodClosed,
		},
	}
	for i := range periods {
		db.Create(&periods[i])
	}

	return db
}

func testScope() ForecastScope {
	return ForecastScope{
		LocationCode: "EST-A",
		SectorCode:   "SEC-01",
		DivisionCode: "DIV-001",
		PeriodCode:   "2025-P1",
	}
}

func TestCommitCreatesAndUpdates(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)
	scope := testScope()

	err := svc.Commit(scope, map[string]float64{"ITM-001": 10}, 1, false)
	assert.NoError(t, err)

	var record models.ForecastRecord
	err = db.Where("item_code = ?", "ITM-001").First(&record).Error
	assert.NoError(t, err)
	assert.Equal(t, 10.0, record.Quantity)
	assert.Equal(t, 1, record.UpdatedByID)

	// Second commit upserts in place, no second row.
	err = svc.Commit(scope, map[string]float64{"ITM-001": 25}, 2, false)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.ForecastRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)

	db.Where("item_code = ?", "ITM-001").First(&record)
	assert.Equal(t, 25.0, record.Quantity)
	assert.Equal(t, 2, record.UpdatedByID)
}

func TestCommitZeroQuantityDeletesRecord(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)
	scope := testScope()

	assert.NoError(t, svc.Commit(scope, map[string]float64{"ITM-001": 10}, 1, false))
	assert.NoError(t, svc.Commit(scope, map[string]float64{"ITM-001": 0}, 1, false))

	var count int64
	db.Model(&models.ForecastRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// The natural key must be immediately reusable after removal.
	assert.NoError(t, svc.Commit(scope, map[string]float64{"ITM-001": 7}, 1, false))
	db.Model(&models.ForecastRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var record models.ForecastRecord
	db.Where("item_code = ?", "ITM-001").First(&record)
	assert.Equal(t, 7.0, record.Quantity)
}

func TestCommitDeleteUnknownKeyIsNoop(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	err := svc.Commit(testScope(), map[string]float64{"ITM-002": 0}, 1, false)
	assert.NoError(t, err)
}

func TestCommitClosedPeriodRejected(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	scope := testScope()
	scope.PeriodCode = "2024-P12"

	err := svc.Commit(scope, map[string]float64{"ITM-001": 10}, 1, false)
	assert.ErrorIs(t, err, ErrPeriodClosed)

	// Admin bypasses the gate.
	err = svc.Commit(scope, map[string]float64{"ITM-001": 10}, 1, true)
	assert.NoError(t, err)
}

func TestCommitUnknownPeriodRejected(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	scope := testScope()
	scope.PeriodCode = "2099-P9"

	err := svc.Commit(scope, map[string]float64{"ITM-001": 10}, 1, false)
	assert.Error(t, err)
}

func TestCommitScopeIsolation(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	scopeA := testScope()
	scopeB := testScope()
	scopeB.LocationCode = "EST-B"

	assert.NoError(t, svc.Commit(scopeA, map[string]float64{"ITM-001": 10}, 1, false))
	assert.NoError(t, svc.Commit(scopeB, map[string]float64{"ITM-001": 99}, 1, false))

	// Deleting in scope B leaves scope A intact.
	assert.NoError(t, svc.Commit(scopeB, map[string]float64{"ITM-001": 0}, 1, false))

	records, err := svc.GetScopedRecords(scopeA)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 10.0, records[0].Quantity)
}

func TestBulkImportHeaderSynonyms(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	rows := [][]string{
		{"Period ID", "Location Code", "SECTOR", "division_id", "Item Code", "Forecast Qty"},
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-001", "12.5"},
	}

	summary, err := svc.BulkImport(rows, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)

	var record models.ForecastRecord
	assert.NoError(t, db.Where("item_code = ?", "ITM-001").First(&record).Error)
	assert.Equal(t, 12.5, record.Quantity)
}

func TestBulkImportMissingColumnFails(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	rows := [][]string{
		{"Period", "Location", "Sector", "Division", "Item"},
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-001"},
	}

	_, err := svc.BulkImport(rows, 1, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestBulkImportDuplicateKeyLastWriterWins(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	rows := [][]string{
		{"Period", "Location", "Sector", "Division", "Item", "Qty"},
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-001", "10"},
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-001", "15"},
	}

	summary, err := svc.BulkImport(rows, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.SuccessCount)

	var count int64
	db.Model(&models.ForecastRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var record models.ForecastRecord
	db.Where("item_code = ?", "ITM-001").First(&record)
	assert.Equal(t, 15.0, record.Quantity)
}

func TestBulkImportCountsRowErrorsWithoutAborting(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	rows := [][]string{
		{"Period", "Location", "Sector", "Division", "Item", "Qty"},
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-001", "10"},
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-XXX", "10"},  // unknown item
		{"2025-P1", "EST-Z", "SEC-01", "DIV-001", "ITM-002", "10"},  // unknown location
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-002", "abc"}, // bad quantity
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-002", "-3"},  // non-positive
		{"2025-P1", "EST-A", "SEC-01", "", "ITM-002", "10"},         // missing key
		{"2024-P12", "EST-A", "SEC-01", "DIV-001", "ITM-002", "10"}, // closed period
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-002", "20"},
	}

	summary, err := svc.BulkImport(rows, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, 8, summary.TotalRows)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 6, summary.ErrorCount)
	assert.Len(t, summary.Errors, 6)

	var count int64
	db.Model(&models.ForecastRecord{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestBulkImportAdminCanFillClosedPeriod(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	rows := [][]string{
		{"Period", "Location", "Sector", "Division", "Item", "Qty"},
		{"2024-P12", "EST-A", "SEC-01", "DIV-001", "ITM-001", "10"},
	}

	summary, err := svc.BulkImport(rows, 1, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)
}

func TestBulkImportSkipsEmptyRows(t *testing.T) {
	db := setupForecastTestDB(t)
	svc := NewForecastService(db)

	rows := [][]string{
		{"Period", "Location", "Sector", "Division", "Item", "Qty"},
		{"2025-P1", "EST-A", "SEC-01", "DIV-001", "ITM-001", "10"},
		{"", "", "", "", "", ""},
	}

	summary, err := svc.BulkImport(rows, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalRows)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)
}

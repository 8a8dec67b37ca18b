package repositories

import (
	"testing"

	"wareflow-app/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupForecastRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to connect to test database")
	}

	assert.NoError(t, db.AutoMigrate(&models.ForecastRecord{}))

	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 10},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-002", PeriodCode: "2025-P1", Quantity: 20},
		{LocationCode: "EST-B", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P2", Quantity: 30},
	}
	for i := range records {
		assert.NoError(t, db.Create(&records[i]).Error)
	}

	return db
}

func TestGetAllReturnsFullLedger(t *testing.T) {
	repo := NewForecastRepository(setupForecastRepoTestDB(t))

	records, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestGetByScopeFiltersSlice(t *testing.T) {
	repo := NewForecastRepository(setupForecastRepoTestDB(t))

	records, err := repo.GetByScope("EST-A", "DIV-001", "2025-P1")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFindByNaturalKeyMissingIsNilNil(t *testing.T) {
	repo := NewForecastRepository(setupForecastRepoTestDB(t))

	record, err := repo.FindByNaturalKey("EST-A", "DIV-001", "ITM-999", "2025-P1")
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestDeleteByNaturalKeyFreesKeyForReuse(t *testing.T) {
	db := setupForecastRepoTestDB(t)
	repo := NewForecastRepository(db)

	assert.NoError(t, repo.DeleteByNaturalKey("EST-A", "DIV-001", "ITM-001", "2025-P1"))

	// Hard delete: no row survives, even unscoped.
	var count int64
	db.Unscoped().Model(&models.ForecastRecord{}).
		Where("item_code = ? AND location_code = ?", "ITM-001", "EST-A").
		Count(&count)
	assert.Equal(t, int64(0), count)

	// The natural key can be inserted again immediately.
	err := repo.Create(&models.ForecastRecord{
		LocationCode: "EST-A", DivisionCode: "DIV-001",
		ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 5,
	})
	assert.NoError(t, err)
}

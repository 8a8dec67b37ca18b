package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrateCreatesAllTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to connect to test database")
	}

	assert.NoError(t, Migrate(db))

	for _, table := range []string{
		"users", "items", "machines", "bom_records",
		"locations", "sectors", "divisions",
		"forecast_periods", "forecast_records",
		"issue_requests", "issue_request_details", "issue_records",
		"stock_balances", "stock_adjustments",
		"work_orders", "maintenance_plans", "file_logs",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table: "+table)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to connect to test database")
	}

	assert.NoError(t, Migrate(db))
	assert.NoError(t, Migrate(db))
}

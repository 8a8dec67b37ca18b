package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"wareflow-app/controllers/idgen"
	"wareflow-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWorkOrderTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to connect to test database")
	}

	err = db.AutoMigrate(&models.WorkOrder{}, &models.MaintenancePlan{}, &models.Machine{})
	assert.NoError(t, err)

	db.Create(&models.Machine{MachineCode: "M-01", Category: "Tractor", ModelNo: "T-100", LocationCode: "EST-A"})

	idgen.Init()

	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", float64(1))
		return ctx.Next()
	})

	workOrderController := NewWorkOrderController(db)
	app.Post("/work-orders", workOrderController.CreateWorkOrder)
	app.Put("/work-orders/:id/start", workOrderController.StartWorkOrder)
	app.Put("/work-orders/:id/complete", workOrderController.CompleteWorkOrder)

	return app, db
}

func createTestWorkOrder(t *testing.T, app *fiber.App) uint {
	payload := map[string]interface{}{
		"machine_code":   "M-01",
		"location_code":  "EST-A",
		"field_or_crop":  "Block 12",
		"description":    "Hydraulic hose replacement",
		"scheduled_date": "2025-06-10",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/work-orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		Data models.WorkOrder `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	return result.Data.ID
}

func TestWorkOrderLifecycle(t *testing.T) {
	app, db := setupWorkOrderTestApp(t)

	id := createTestWorkOrder(t, app)

	var order models.WorkOrder
	db.First(&order, id)
	assert.Equal(t, models.WorkOrderOpen, order.Status)
	assert.Contains(t, order.WoNo, "WO")

	req := httptest.NewRequest("PUT", fmt.Sprintf("/work-orders/%d/start", id), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := json.Marshal(map[string]string{"completed_note": "hose replaced"})
	req = httptest.NewRequest("PUT", fmt.Sprintf("/work-orders/%d/complete", id), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	db.First(&order, id)
	assert.Equal(t, models.WorkOrderDone, order.Status)
	assert.NotNil(t, order.CompletedDate)
	assert.Equal(t, "hose replaced", order.CompletedNote)
}

func TestWorkOrderCannotCompleteFromOpen(t *testing.T) {
	app, _ := setupWorkOrderTestApp(t)

	id := createTestWorkOrder(t, app)

	req := httptest.NewRequest("PUT", fmt.Sprintf("/work-orders/%d/complete", id), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWorkOrderCannotStartTwice(t *testing.T) {
	app, _ := setupWorkOrderTestApp(t)

	id := createTestWorkOrder(t, app)

	req := httptest.NewRequest("PUT", fmt.Sprintf("/work-orders/%d/start", id), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("PUT", fmt.Sprintf("/work-orders/%d/start", id), nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

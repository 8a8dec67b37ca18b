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

func setupIssueTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to connect to test database")
	}

	err = db.AutoMigrate(
		&models.Item{},
		&models.IssueRequest{},
		&models.IssueRequestDetail{},
		&models.IssueRecord{},
		&models.StockBalance{},
	)
	assert.NoError(t, err)

	db.Create(&models.Item{ItemCode: "ITM-001", ItemName: "Engine Oil", Uom: "LTR"})
	db.Create(&models.StockBalance{LocationCode: "EST-A", ItemCode: "ITM-001", QtyOnhand: 20})

	idgen.Init()

	app := fiber.New()
	// Stand-in for the auth middleware: claims arrive as float64.
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", float64(1))
		return ctx.Next()
	})

	issueController := NewIssueController(db)
	app.Post("/issues", issueController.CreateIssueRequest)
	app.Get("/issues", issueController.GetAllIssueRequests)
	app.Put("/issues/:id/approve", issueController.ApproveIssueRequest)
	app.Put("/issues/:id/reject", issueController.RejectIssueRequest)
	app.Put("/issues/:id/post", issueController.PostIssueRequest)

	return app, db
}

func createTestIssue(t *testing.T, app *fiber.App, qty float64) uint {
	payload := map[string]interface{}{
		"location_code": "EST-A",
		"sector_code":   "SEC-01",
		"division_code": "DIV-001",
		"details": []map[string]interface{}{
			{"item_code": "ITM-001", "quantity": qty},
		},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/issues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		Data models.IssueRequest `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.NotEmpty(t, result.Data.IssueNo)
	return result.Data.ID
}

func TestIssueRequestLifecycle(t *testing.T) {
	app, db := setupIssueTestApp(t)

	id := createTestIssue(t, app, 5)

	// Approve
	req := httptest.NewRequest("PUT", fmt.Sprintf("/issues/%d/approve", id), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Post
	req = httptest.NewRequest("PUT", fmt.Sprintf("/issues/%d/post", id), nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var request models.IssueRequest
	db.First(&request, id)
	assert.Equal(t, models.IssueStatusIssued, request.Status)

	// Stock decremented and history row written.
	var balance models.StockBalance
	db.Where("location_code = ? AND item_code = ?", "EST-A", "ITM-001").First(&balance)
	assert.Equal(t, 15.0, balance.QtyOnhand)

	var record models.IssueRecord
	db.Where("issue_no = ?", request.IssueNo).First(&record)
	assert.Equal(t, 5.0, record.Quantity)
	assert.Equal(t, "app", record.Source)
}

func TestApproveRejectsInsufficientStock(t *testing.T) {
	app, _ := setupIssueTestApp(t)

	id := createTestIssue(t, app, 100)

	req := httptest.NewRequest("PUT", fmt.Sprintf("/issues/%d/approve", id), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostRequiresApprovedStatus(t *testing.T) {
	app, _ := setupIssueTestApp(t)

	id := createTestIssue(t, app, 5)

	// Still open, cannot post yet.
	req := httptest.NewRequest("PUT", fmt.Sprintf("/issues/%d/post", id), nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRejectClosesRequest(t *testing.T) {
	app, db := setupIssueTestApp(t)

	id := createTestIssue(t, app, 5)

	body, _ := json.Marshal(map[string]string{"remarks": "not needed"})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/issues/%d/reject", id), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var request models.IssueRequest
	db.First(&request, id)
	assert.Equal(t, models.IssueStatusRejected, request.Status)
	assert.Equal(t, "not needed", request.Remarks)

	// A rejected request cannot be approved afterwards.
	req = httptest.NewRequest("PUT", fmt.Sprintf("/issues/%d/approve", id), nil)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateIssueRequestValidatesDetails(t *testing.T) {
	app, _ := setupIssueTestApp(t)

	payload := map[string]interface{}{
		"location_code": "EST-A",
		"details":       []map[string]interface{}{},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/issues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestIssueNumbersIncrementWithinDay(t *testing.T) {
	app, db := setupIssueTestApp(t)

	first := createTestIssue(t, app, 1)
	second := createTestIssue(t, app, 2)

	var a, b models.IssueRequest
	db.First(&a, first)
	db.First(&b, second)

	assert.NotEqual(t, a.IssueNo, b.IssueNo)
	assert.Equal(t, a.IssueNo[:11], b.IssueNo[:11]) // same IRyyyymmdd- prefix
}

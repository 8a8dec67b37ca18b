package controllers

import (
	"time"

	"wareflow-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaintenanceController struct {
	DB *gorm.DB
}

func NewMaintenanceController(DB *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: DB}
}

func (c *MaintenanceController) CreatePlan(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		MachineCode  string `json:"machine_code" validate:"required"`
		Task         string `json:"task" validate:"required"`
		IntervalDays int    `json:"interval_days" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var machine models.Machine
	if err := c.DB.Where("machine_code = ?", input.MachineCode).First(&machine).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Machine not found: " + input.MachineCode})
	}

	plan := models.MaintenancePlan{
		MachineCode:  input.MachineCode,
		Task:         input.Task,
		IntervalDays: input.IntervalDays,
		IsActive:     true,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	if err := c.DB.Create(&plan).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Maintenance plan created successfully",
		"data":    plan,
	})
}

func (c *MaintenanceController) GetAllPlans(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.MaintenancePlan{})
	if machine := ctx.Query("machine"); machine != "" {
		query = query.Where("machine_code = ?", machine)
	}

	var plans []models.MaintenancePlan
	if err := query.Find(&plans).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    plans,
	})
}

func (c *MaintenanceController) UpdatePlan(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var plan models.MaintenancePlan
	if err := c.DB.First(&plan, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance plan not found"})
	}

	var input struct {
		Task         string `json:"task"`
		IntervalDays int    `json:"interval_days"`
		IsActive     *bool  `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Task != "" {
		plan.Task = input.Task
	}
	if input.IntervalDays > 0 {
		plan.IntervalDays = input.IntervalDays
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}
	plan.UpdatedBy = userID

	if err := c.DB.Save(&plan).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Maintenance plan updated successfully",
		"data":    plan,
	})
}

func (c *MaintenanceController) DeletePlan(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var plan models.MaintenancePlan
	if err := c.DB.First(&plan, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance plan not found"})
	}

	plan.DeletedBy = userID
	c.DB.Save(&plan)

	if err := c.DB.Delete(&plan).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Maintenance plan deleted successfully",
	})
}

// GetDuePlans lists active plans whose next due date is on or before the
// horizon (default today, optional ?days=N lookahead).
func (c *MaintenanceController) GetDuePlans(ctx *fiber.Ctx) error {
	days := ctx.QueryInt("days", 0)
	horizon := time.Now().AddDate(0, 0, days)

	var plans []models.MaintenancePlan
	if err := c.DB.Where("is_active = ?", true).Find(&plans).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	type duePlan struct {
		models.MaintenancePlan
		NextDue time.Time `json:"next_due"`
	}

	due := []duePlan{}
	for _, p := range plans {
		next := p.NextDue()
		// Never-run plans are due immediately.
		if next.IsZero() || !next.After(horizon) {
			due = append(due, duePlan{MaintenancePlan: p, NextDue: next})
		}
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    due,
		"total":   len(due),
	})
}

// MarkPlanDone stamps LastDone so the interval restarts from today.
func (c *MaintenanceController) MarkPlanDone(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var plan models.MaintenancePlan
	if err := c.DB.First(&plan, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance plan not found"})
	}

	now := time.Now()
	plan.LastDone = &now
	plan.UpdatedBy = userID

	if err := c.DB.Save(&plan).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Maintenance plan marked done",
		"data":    plan,
	})
}

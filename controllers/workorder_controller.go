package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"wareflow-app/controllers/idgen"
	"wareflow-app/models"
	"wareflow-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkOrderController struct {
	DB *gorm.DB
}

func NewWorkOrderController(DB *gorm.DB) *WorkOrderController {
	return &WorkOrderController{DB: DB}
}

// GenerateWoNo membuat nomor dokumen WOyyyymmdd-0001, reset per hari.
func (c *WorkOrderController) GenerateWoNo() (string, error) {
	var lastOrder models.WorkOrder

	if err := c.DB.Last(&lastOrder).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	today := time.Now().Format("20060102")

	var woNo string
	if lastOrder.WoNo != "" && len(lastOrder.WoNo) >= 15 && lastOrder.WoNo[2:10] == today {
		lastSeq, _ := strconv.Atoi(lastOrder.WoNo[len(lastOrder.WoNo)-4:])
		woNo = fmt.Sprintf("WO%s-%04d", today, lastSeq+1)
	} else {
		woNo = fmt.Sprintf("WO%s-%04d", today, 1)
	}

	return woNo, nil
}

func (c *WorkOrderController) CreateWorkOrder(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		MachineCode   string `json:"machine_code" validate:"required"`
		LocationCode  string `json:"location_code" validate:"required"`
		FieldOrCrop   string `json:"field_or_crop"`
		Description   string `json:"description" validate:"required"`
		ScheduledDate string `json:"scheduled_date" validate:"required"`
		AssignedTo    int    `json:"assigned_to"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	scheduled, err := time.Parse("2006-01-02", input.ScheduledDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid scheduled_date, expected YYYY-MM-DD"})
	}

	woNo, err := c.GenerateWoNo()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	order := models.WorkOrder{
		WoNo:          woNo,
		RefID:         types.SnowflakeID(idgen.GenerateID()),
		MachineCode:   input.MachineCode,
		LocationCode:  input.LocationCode,
		FieldOrCrop:   input.FieldOrCrop,
		Description:   input.Description,
		Status:        models.WorkOrderOpen,
		ScheduledDate: scheduled,
		AssignedTo:    input.AssignedTo,
		CreatedBy:     userID,
		UpdatedBy:     userID,
	}

	if err := c.DB.Create(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Work order created successfully",
		"data":    order,
	})
}

func (c *WorkOrderController) GetAllWorkOrders(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.WorkOrder{})
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if machine := ctx.Query("machine"); machine != "" {
		query = query.Where("machine_code = ?", machine)
	}

	var orders []models.WorkOrder
	if err := query.Order("scheduled_date").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"total":   len(orders),
	})
}

func (c *WorkOrderController) GetWorkOrderByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var order models.WorkOrder

	if err := c.DB.First(&order, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}

// StartWorkOrder: open → in_progress.
func (c *WorkOrderController) StartWorkOrder(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var order models.WorkOrder
	if err := c.DB.First(&order, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
	}

	if order.Status != models.WorkOrderOpen {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open work orders can be started, current status: " + order.Status,
		})
	}

	order.Status = models.WorkOrderInProgress
	order.UpdatedBy = userID

	if err := c.DB.Save(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Work order started",
		"data":    order,
	})
}

// CompleteWorkOrder: in_progress → done, dengan catatan penyelesaian.
func (c *WorkOrderController) CompleteWorkOrder(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		CompletedNote string `json:"completed_note"`
	}
	ctx.BodyParser(&input)

	var order models.WorkOrder
	if err := c.DB.First(&order, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
	}

	if order.Status != models.WorkOrderInProgress {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only in-progress work orders can be completed, current status: " + order.Status,
		})
	}

	now := time.Now()
	order.Status = models.WorkOrderDone
	order.CompletedDate = &now
	order.CompletedNote = input.CompletedNote
	order.UpdatedBy = userID

	if err := c.DB.Save(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Work order completed",
		"data":    order,
	})
}

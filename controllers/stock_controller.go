package controllers

import (
	"wareflow-app/models"
	"wareflow-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(DB *gorm.DB) *StockController {
	return &StockController{DB: DB}
}

func (c *StockController) GetAllBalances(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.StockBalance{})
	if location := ctx.Query("location"); location != "" {
		query = query.Where("location_code = ?", location)
	}

	var balances []models.StockBalance
	if err := query.Find(&balances).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    balances,
		"total":   len(balances),
	})
}

func (c *StockController) GetIssuedSummary(ctx *fiber.Ctx) error {
	repo := repositories.NewIssueRepository(c.DB)
	rows, err := repo.GetIssuedSummary()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    rows,
	})
}

// CreateAdjustment mencatat hasil hitung fisik, menunggu approval.
func (c *StockController) CreateAdjustment(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		LocationCode string  `json:"location_code" validate:"required"`
		ItemCode     string  `json:"item_code" validate:"required"`
		QtyCounted   float64 `json:"qty_counted" validate:"gte=0"`
		Reason       string  `json:"reason"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	balance, err := stockRepo.GetBalance(input.LocationCode, input.ItemCode)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	qtySystem := 0.0
	if balance != nil {
		qtySystem = balance.QtyOnhand
	}

	adjustment := models.StockAdjustment{
		LocationCode: input.LocationCode,
		ItemCode:     input.ItemCode,
		QtyCounted:   input.QtyCounted,
		QtySystem:    qtySystem,
		Reason:       input.Reason,
		Status:       models.AdjustmentPending,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	if err := c.DB.Create(&adjustment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Stock adjustment created, waiting for approval",
		"data":    adjustment,
	})
}

func (c *StockController) GetAllAdjustments(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.StockAdjustment{})
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var adjustments []models.StockAdjustment
	if err := query.Order("created_at desc").Find(&adjustments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    adjustments,
		"total":   len(adjustments),
	})
}

// ApproveAdjustment memindahkan angka hitung fisik ke saldo stok.
func (c *StockController) ApproveAdjustment(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var adjustment models.StockAdjustment
	if err := c.DB.First(&adjustment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Adjustment not found"})
	}

	if adjustment.Status != models.AdjustmentPending {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only pending adjustments can be approved, current status: " + adjustment.Status,
		})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		stockRepo := repositories.NewStockRepository(tx)
		if err := stockRepo.SetQuantity(adjustment.LocationCode, adjustment.ItemCode, adjustment.QtyCounted, userID); err != nil {
			return err
		}

		adjustment.Status = models.AdjustmentApproved
		adjustment.ApprovedBy = userID
		adjustment.UpdatedBy = userID
		return tx.Save(&adjustment).Error
	})

	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Stock adjustment approved and posted",
		"data":    adjustment,
	})
}

func (c *StockController) RejectAdjustment(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var adjustment models.StockAdjustment
	if err := c.DB.First(&adjustment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Adjustment not found"})
	}

	if adjustment.Status != models.AdjustmentPending {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only pending adjustments can be rejected, current status: " + adjustment.Status,
		})
	}

	adjustment.Status = models.AdjustmentRejected
	adjustment.ApprovedBy = userID
	adjustment.UpdatedBy = userID

	if err := c.DB.Save(&adjustment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Stock adjustment rejected",
		"data":    adjustment,
	})
}

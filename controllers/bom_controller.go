package controllers

import (
	"errors"

	"wareflow-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BomController struct {
	DB *gorm.DB
}

func NewBomController(DB *gorm.DB) *BomController {
	return &BomController{DB: DB}
}

func (c *BomController) CreateBomRecord(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var bomInput struct {
		MachineCategory string  `json:"machine_category" validate:"required"`
		ModelNo         string  `json:"model_no"`
		ItemCode        string  `json:"item_code" validate:"required"`
		Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&bomInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(bomInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Item harus ada di master
	var item models.Item
	if err := c.DB.Where("item_code = ?", bomInput.ItemCode).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown item: " + bomInput.ItemCode})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	bom := models.BOMRecord{
		MachineCategory: bomInput.MachineCategory,
		ModelNo:         bomInput.ModelNo,
		ItemCode:        bomInput.ItemCode,
		Quantity:        bomInput.Quantity,
		CreatedBy:       userID,
		UpdatedBy:       userID,
	}

	if err := c.DB.Create(&bom).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "BOM record created successfully",
		"data":    bom,
	})
}

func (c *BomController) GetAllBomRecords(ctx *fiber.Ctx) error {
	var records []models.BOMRecord
	if err := c.DB.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    records,
		"total":   len(records),
	})
}

func (c *BomController) UpdateBomRecord(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var bom models.BOMRecord
	if err := c.DB.First(&bom, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "BOM record not found"})
	}

	var input models.BOMRecord
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	bom.MachineCategory = input.MachineCategory
	bom.ModelNo = input.ModelNo
	bom.ItemCode = input.ItemCode
	bom.Quantity = input.Quantity
	bom.UpdatedBy = userID

	if err := c.DB.Save(&bom).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "BOM record updated successfully",
		"data":    bom,
	})
}

func (c *BomController) DeleteBomRecord(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var bom models.BOMRecord
	if err := c.DB.First(&bom, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "BOM record not found"})
	}

	bom.DeletedBy = userID
	if err := c.DB.Save(&bom).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&bom).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "BOM record deleted successfully",
	})
}

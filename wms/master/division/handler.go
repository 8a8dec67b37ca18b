package division

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DivisionHandler struct {
	DB *gorm.DB
}

func NewDivisionHandler(db *gorm.DB) *DivisionHandler {
	return &DivisionHandler{DB: db}
}

func (h *DivisionHandler) GetAllDivisions(ctx *fiber.Ctx) error {
	var divisions []Division
	if err := h.DB.Find(&divisions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve divisions",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Divisions retrieved successfully",
		"data":    divisions,
	})
}

func (h *DivisionHandler) GetDivisionByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var div Division
	if err := h.DB.First(&div, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Division not found"})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    div,
	})
}

func (h *DivisionHandler) CreateDivision(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var div Division
	if err := ctx.BodyParser(&div); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	div.CreatedBy = userID
	div.UpdatedBy = userID

	if err := h.DB.Create(&div).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Division created successfully",
		"data":    div,
	})
}

func (h *DivisionHandler) UpdateDivision(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var div Division
	if err := h.DB.First(&div, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Division not found"})
	}

	var input Division
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	div.Code = input.Code
	div.Name = input.Name
	div.Description = input.Description
	div.UpdatedBy = userID

	if err := h.DB.Save(&div).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Division updated successfully",
		"data":    div,
	})
}

func (h *DivisionHandler) DeleteDivision(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var div Division
	if err := h.DB.First(&div, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Division not found"})
	}

	div.DeletedBy = userID
	if err := h.DB.Save(&div).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.DB.Delete(&div).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Division deleted successfully",
	})
}

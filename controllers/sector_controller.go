package controllers

import (
	"wareflow-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SectorController struct {
	DB *gorm.DB
}

func NewSectorController(DB *gorm.DB) *SectorController {
	return &SectorController{DB: DB}
}

func (c *SectorController) CreateSector(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var sector models.Sector
	if err := ctx.BodyParser(&sector); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if sector.SectorCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sector code cannot be empty"})
	}

	sector.CreatedBy = userID
	sector.UpdatedBy = userID

	if err := c.DB.Create(&sector).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Sector created successfully",
		"data":    sector,
	})
}

func (c *SectorController) GetAllSectors(ctx *fiber.Ctx) error {
	var sectors []models.Sector
	if err := c.DB.Find(&sectors).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    sectors,
	})
}

func (c *SectorController) GetSectorByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var sector models.Sector

	if err := c.DB.First(&sector, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sector not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    sector,
	})
}

func (c *SectorController) UpdateSector(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var sector models.Sector
	if err := c.DB.First(&sector, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sector not found"})
	}

	var input models.Sector
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	sector.SectorCode = input.SectorCode
	sector.Name = input.Name
	sector.LocationCode = input.LocationCode
	sector.IsActive = input.IsActive
	sector.UpdatedBy = userID

	if err := c.DB.Save(&sector).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Sector updated successfully",
		"data":    sector,
	})
}

func (c *SectorController) DeleteSector(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var sector models.Sector
	if err := c.DB.First(&sector, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sector not found"})
	}

	sector.DeletedBy = userID
	if err := c.DB.Save(&sector).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&sector).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Sector deleted successfully",
	})
}

package controllers

import (
	"wareflow-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{DB: DB}
}

// CREATE
func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var itemInput struct {
		ItemCode   string  `json:"item_code" validate:"required"`
		ItemName   string  `json:"item_name" validate:"required"`
		Uom        string  `json:"uom" validate:"required"`
		PartNumber string  `json:"part_number"`
		Brand      string  `json:"brand"`
		Group      string  `json:"group"`
		Category   string  `json:"category"`
		MinLevel   float64 `json:"min_level"`
		MaxLevel   float64 `json:"max_level"`
		IsAdHoc    bool    `json:"is_ad_hoc"`
		Remarks    string  `json:"remarks"`
	}

	if err := ctx.BodyParser(&itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Validasi input
	validate := validator.New()
	if err := validate.Struct(itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.Item{
		ItemCode:   itemInput.ItemCode,
		ItemName:   itemInput.ItemName,
		Uom:        itemInput.Uom,
		PartNumber: itemInput.PartNumber,
		Brand:      itemInput.Brand,
		Group:      itemInput.Group,
		Category:   itemInput.Category,
		MinLevel:   itemInput.MinLevel,
		MaxLevel:   itemInput.MaxLevel,
		IsAdHoc:    itemInput.IsAdHoc,
		Remarks:    itemInput.Remarks,
		CreatedBy:  userID,
		UpdatedBy:  userID,
	}

	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Item created successfully",
		"data":    item,
	})
}

// READ ALL
func (c *ItemController) GetAllItems(ctx *fiber.Ctx) error {
	var items []models.Item
	if err := c.DB.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"total":   len(items),
	})
}

// READ BY ID
func (c *ItemController) GetItemByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var item models.Item

	if err := c.DB.First(&item, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// UPDATE
func (c *ItemController) UpdateItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}

	var input models.Item
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	item.ItemCode = input.ItemCode
	item.ItemName = input.ItemName
	item.Uom = input.Uom
	item.PartNumber = input.PartNumber
	item.Brand = input.Brand
	item.Group = input.Group
	item.Category = input.Category
	item.MinLevel = input.MinLevel
	item.MaxLevel = input.MaxLevel
	item.IsAdHoc = input.IsAdHoc
	item.Remarks = input.Remarks
	item.UpdatedBy = userID

	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Item updated successfully",
		"data":    item,
	})
}

// DELETE
func (c *ItemController) DeleteItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}

	item.DeletedBy = userID
	if err := c.DB.Save(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Item deleted successfully",
	})
}

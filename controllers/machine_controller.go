package controllers

import (
	"wareflow-app/models"
	"wareflow-app/services"
	"wareflow-app/wms/master/division"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MachineController struct {
	DB *gorm.DB
}

func NewMachineController(DB *gorm.DB) *MachineController {
	return &MachineController{DB: DB}
}

// loadMasterRef builds the canonical reference maps from current master data.
func (c *MachineController) loadMasterRef() (*services.MasterRef, error) {
	var locations []models.Location
	if err := c.DB.Find(&locations).Error; err != nil {
		return nil, err
	}
	var sectors []models.Sector
	if err := c.DB.Find(&sectors).Error; err != nil {
		return nil, err
	}
	var divisions []division.Division
	if err := c.DB.Find(&divisions).Error; err != nil {
		return nil, err
	}
	return services.NewMasterRef(locations, sectors, divisions), nil
}

func (c *MachineController) CreateMachine(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var machineInput struct {
		MachineCode  string `json:"machine_code" validate:"required"`
		Category     string `json:"category" validate:"required"`
		ModelNo      string `json:"model_no"`
		Brand        string `json:"brand"`
		SerialNo     string `json:"serial_no"`
		LocationCode string `json:"location_code" validate:"required"`
		SectorCode   string `json:"sector_code"`
		DivisionCode string `json:"division_code"`
	}

	if err := ctx.BodyParser(&machineInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(machineInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Referensi lokasi/sektor/divisi dinormalisasi ke kode kanonik saat simpan
	ref, err := c.loadMasterRef()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	locationCode := ref.LocationCode(machineInput.LocationCode)
	if locationCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown location: " + machineInput.LocationCode})
	}

	machine := models.Machine{
		MachineCode:  machineInput.MachineCode,
		Category:     machineInput.Category,
		ModelNo:      machineInput.ModelNo,
		Brand:        machineInput.Brand,
		SerialNo:     machineInput.SerialNo,
		LocationCode: locationCode,
		SectorCode:   ref.SectorCode(machineInput.SectorCode),
		DivisionCode: ref.DivisionCode(machineInput.DivisionCode),
		IsActive:     true,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	if err := c.DB.Create(&machine).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Machine created successfully",
		"data":    machine,
	})
}

func (c *MachineController) GetAllMachines(ctx *fiber.Ctx) error {
	var machines []models.Machine
	if err := c.DB.Find(&machines).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    machines,
		"total":   len(machines),
	})
}

func (c *MachineController) GetMachineByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var machine models.Machine

	if err := c.DB.First(&machine, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Machine not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    machine,
	})
}

func (c *MachineController) UpdateMachine(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var machine models.Machine
	if err := c.DB.First(&machine, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Machine not found"})
	}

	var input models.Machine
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	ref, err := c.loadMasterRef()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	machine.MachineCode = input.MachineCode
	machine.Category = input.Category
	machine.ModelNo = input.ModelNo
	machine.Brand = input.Brand
	machine.SerialNo = input.SerialNo
	machine.LocationCode = ref.LocationCode(input.LocationCode)
	machine.SectorCode = ref.SectorCode(input.SectorCode)
	machine.DivisionCode = ref.DivisionCode(input.DivisionCode)
	machine.IsActive = input.IsActive
	machine.UpdatedBy = userID

	if err := c.DB.Save(&machine).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Machine updated successfully",
		"data":    machine,
	})
}

func (c *MachineController) DeleteMachine(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var machine models.Machine
	if err := c.DB.First(&machine, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Machine not found"})
	}

	machine.DeletedBy = userID
	if err := c.DB.Save(&machine).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&machine).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Machine deleted successfully",
	})
}

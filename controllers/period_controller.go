package controllers

import (
	"time"

	"wareflow-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PeriodController struct {
	DB *gorm.DB
}

func NewPeriodController(DB *gorm.DB) *PeriodController {
	return &PeriodController{DB: DB}
}

type periodInput struct {
	PeriodCode string `json:"period_code" validate:"required"`
	Name       string `json:"name" validate:"required"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}

func parsePeriodDates(input periodInput) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// CreatePeriod membuat periode baru, selalu berstatus Open.
func (c *PeriodController) CreatePeriod(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input periodInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	start, end, err := parsePeriodDates(input)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	if end.Before(start) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must not precede start date"})
	}

	period := models.ForecastPeriod{
		PeriodCode: input.PeriodCode,
		Name:       input.Name,
		StartDate:  start,
		EndDate:    end,
		Status:     models.PeriodOpen,
		CreatedBy:  userID,
		UpdatedBy:  userID,
	}

	if err := c.DB.Create(&period).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Period created successfully",
		"data":    period,
	})
}

func (c *PeriodController) GetAllPeriods(ctx *fiber.Ctx) error {
	var periods []models.ForecastPeriod
	if err := c.DB.Order("start_date").Find(&periods).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    periods,
	})
}

func (c *PeriodController) GetPeriodByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var period models.ForecastPeriod

	if err := c.DB.First(&period, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Period not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    period,
	})
}

// UpdatePeriod mengubah nama dan rentang tanggal. Periode tidak pernah
// dihapus dari aplikasi.
func (c *PeriodController) UpdatePeriod(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var period models.ForecastPeriod
	if err := c.DB.First(&period, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Period not found"})
	}

	var input periodInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.StartDate != "" || input.EndDate != "" {
		start, end, err := parsePeriodDates(input)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		if end.Before(start) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must not precede start date"})
		}
		period.StartDate = start
		period.EndDate = end
	}

	if input.Name != "" {
		period.Name = input.Name
	}
	period.UpdatedBy = userID

	if err := c.DB.Save(&period).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Period updated successfully",
		"data":    period,
	})
}

// ToggleStatus membuka atau menutup periode.
func (c *PeriodController) ToggleStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var period models.ForecastPeriod
	if err := c.DB.First(&period, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Period not found"})
	}

	if period.Status == models.PeriodOpen {
		period.Status = models.PeriodClosed
	} else {
		period.Status = models.PeriodOpen
	}
	period.UpdatedBy = userID

	if err := c.DB.Save(&period).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Period status updated",
		"data":    period,
	})
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"wareflow-app/models"
	"wareflow-app/repositories"
	"wareflow-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReorderController struct {
	DB *gorm.DB
}

func NewReorderController(DB *gorm.DB) *ReorderController {
	return &ReorderController{DB: DB}
}

func (c *ReorderController) loadSuggestions(ctx *fiber.Ctx) ([]services.ReorderSuggestion, error) {
	windowMonths := 3
	if w := ctx.Query("window"); w != "" {
		if parsed, err := strconv.Atoi(w); err == nil && parsed > 0 {
			windowMonths = parsed
		}
	}

	var items []models.Item
	if err := c.DB.Find(&items).Error; err != nil {
		return nil, err
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	balances, err := stockRepo.GetAllBalances()
	if err != nil {
		return nil, err
	}

	issueRepo := repositories.NewIssueRepository(c.DB)
	history, err := issueRepo.GetAllRecords()
	if err != nil {
		return nil, err
	}

	suggestions := services.AnalyzeReorder(items, balances, history, windowMonths, time.Now())

	if location := ctx.Query("location"); location != "" {
		filtered := suggestions[:0]
		for _, s := range suggestions {
			if s.LocationCode == location {
				filtered = append(filtered, s)
			}
		}
		suggestions = filtered
	}

	if flag := ctx.Query("flag"); flag != "" {
		filtered := suggestions[:0]
		for _, s := range suggestions {
			if s.Flag == flag {
				filtered = append(filtered, s)
			}
		}
		suggestions = filtered
	}

	return suggestions, nil
}

// GetReorderAnalysis returns MRO reorder suggestions per location and item.
func (c *ReorderController) GetReorderAnalysis(ctx *fiber.Ctx) error {
	suggestions, err := c.loadSuggestions(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    suggestions,
		"total":   len(suggestions),
	})
}

func (c *ReorderController) ExportReorderAnalysis(ctx *fiber.Ctx) error {
	suggestions, err := c.loadSuggestions(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Location", "Item Code", "Item Name", "Unit", "On Hand",
		"Avg Monthly Use", "Min Level", "Max Level", "Suggested Qty", "Flag"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, s := range suggestions {
		values := []interface{}{s.LocationCode, s.ItemCode, s.ItemName, s.Uom,
			s.QtyOnhand.InexactFloat64(), s.AvgMonthlyUse.InexactFloat64(),
			s.MinLevel.InexactFloat64(), s.MaxLevel.InexactFloat64(),
			s.SuggestedQty.InexactFloat64(), s.Flag}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="reorder_analysis.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wareflow-app/models"
	"wareflow-app/repositories"
	"wareflow-app/services"
	"wareflow-app/wms/master/division"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ForecastController struct {
	DB *gorm.DB
}

func NewForecastController(DB *gorm.DB) *ForecastController {
	return &ForecastController{DB: DB}
}

type forecastGridRow struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Uom      string  `json:"uom"`
	Quantity float64 `json:"quantity"`
}

func (c *ForecastController) loadMasterRef() (*services.MasterRef, error) {
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

// GetForecastGrid returns the entry surface for one scope: planned items
// traced through Machine → BOM → Item plus the ad-hoc "other" items, each
// with its currently saved quantity.
func (c *ForecastController) GetForecastGrid(ctx *fiber.Ctx) error {
	locationQ := ctx.Query("location")
	sectorQ := ctx.Query("sector")
	divisionQ := ctx.Query("division")
	periodCode := ctx.Query("period")

	if locationQ == "" || divisionQ == "" || periodCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "location, division and period are required",
		})
	}

	ref, err := c.loadMasterRef()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	locationCode := ref.LocationCode(locationQ)
	if locationCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown location: " + locationQ})
	}
	sectorCode := ref.SectorCode(sectorQ)
	divisionCode := ref.DivisionCode(divisionQ)
	if divisionCode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown division: " + divisionQ})
	}

	var machines []models.Machine
	if err := c.DB.Find(&machines).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	var bomRecords []models.BOMRecord
	if err := c.DB.Find(&bomRecords).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	machines = ref.NormalizeMachines(machines)
	planned := services.PlannedItems(machines, bomRecords, locationCode, sectorCode, divisionCode)

	forecastService := services.NewForecastService(c.DB)
	records, err := forecastService.GetScopedRecords(services.ForecastScope{
		LocationCode: locationCode,
		SectorCode:   sectorCode,
		DivisionCode: divisionCode,
		PeriodCode:   periodCode,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	savedQty := make(map[string]float64, len(records))
	for _, r := range records {
		savedQty[r.ItemCode] += r.Quantity
	}

	var items []models.Item
	if err := c.DB.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	plannedRows := []forecastGridRow{}
	otherRows := []forecastGridRow{}
	for _, item := range items {
		row := forecastGridRow{
			ItemCode: item.ItemCode,
			ItemName: item.ItemName,
			Uom:      item.Uom,
			Quantity: savedQty[item.ItemCode],
		}
		switch {
		case planned[item.ItemCode]:
			plannedRows = append(plannedRows, row)
		case item.IsAdHoc || row.Quantity > 0:
			// Ad-hoc items and items with a saved quantity land in Other
			otherRows = append(otherRows, row)
		}
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"location_code": locationCode,
			"sector_code":   sectorCode,
			"division_code": divisionCode,
			"period_code":   periodCode,
			"planned":       plannedRows,
			"others":        otherRows,
		},
	})
}

// SaveForecast commits an edit buffer into one scope slice.
func (c *ForecastController) SaveForecast(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))
	isAdmin, _ := ctx.Locals("isAdmin").(bool)

	var input struct {
		LocationCode string             `json:"location_code" validate:"required"`
		SectorCode   string             `json:"sector_code"`
		DivisionCode string             `json:"division_code" validate:"required"`
		PeriodCode   string             `json:"period_code" validate:"required"`
		Entries      map[string]float64 `json:"entries" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	scope := services.ForecastScope{
		LocationCode: input.LocationCode,
		SectorCode:   input.SectorCode,
		DivisionCode: input.DivisionCode,
		PeriodCode:   input.PeriodCode,
	}

	forecastService := services.NewForecastService(c.DB)
	if err := forecastService.Commit(scope, input.Entries, userID, isAdmin); err != nil {
		if errors.Is(err, services.ErrPeriodClosed) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "period closed",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Kembalikan slice terbaru untuk sinkronisasi grid
	records, err := forecastService.GetScopedRecords(scope)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Forecast saved successfully",
		"data":    records,
	})
}

//====================================================================
// BEGIN FORECAST IMPORT FROM EXCEL
//====================================================================

func (c *ForecastController) ImportForecastFromExcel(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))
	isAdmin, _ := ctx.Locals("isAdmin").(bool)

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No file uploaded or invalid file",
		})
	}

	// Validate file extension
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid file format. Only .xlsx and .xls files are allowed",
		})
	}

	// Validate file size (max 10MB)
	if file.Size > 10*1024*1024 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "File size exceeds maximum limit of 10MB",
		})
	}

	fileHeader, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to open uploaded file",
		})
	}
	defer fileHeader.Close()

	excelFile, err := excelize.OpenReader(fileHeader)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read Excel file. Please ensure the file is not corrupted",
		})
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Excel file contains no sheets",
		})
	}

	rows, err := excelFile.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read rows from Excel",
		})
	}

	forecastService := services.NewForecastService(c.DB)
	summary, err := forecastService.BulkImport(rows, userID, isAdmin)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Imported %d rows, %d errors", summary.SuccessCount, summary.ErrorCount),
		"data":    summary,
	})
}

//====================================================================
// END FORECAST IMPORT FROM EXCEL
//====================================================================

func (c *ForecastController) buildVarianceFilter(ctx *fiber.Ctx) (services.VarianceFilter, error) {
	filter := services.VarianceFilter{
		LocationCode: ctx.Query("location"),
		SectorCode:   ctx.Query("sector"),
		DivisionCode: ctx.Query("division"),
		PeriodCode:   ctx.Query("period"),
	}

	startQ := ctx.Query("start")
	endQ := ctx.Query("end")
	if startQ != "" && endQ != "" {
		start, err := time.Parse("2006-01-02", startQ)
		if err != nil {
			return filter, fmt.Errorf("invalid start date: %s", startQ)
		}
		end, err := time.Parse("2006-01-02", endQ)
		if err != nil {
			return filter, fmt.Errorf("invalid end date: %s", endQ)
		}
		// Akhir hari supaya tanggal end ikut terhitung
		end = end.Add(24*time.Hour - time.Second)
		filter.OverrideStart = &start
		filter.OverrideEnd = &end
	}

	return filter, nil
}

type varianceReportRow struct {
	services.VarianceRow
	ItemName string `json:"item_name"`
	Uom      string `json:"uom"`
}

func (c *ForecastController) getVarianceRows(ctx *fiber.Ctx) ([]varianceReportRow, error) {
	filter, err := c.buildVarianceFilter(ctx)
	if err != nil {
		return nil, err
	}

	records, err := repositories.NewForecastRepository(c.DB).GetAll()
	if err != nil {
		return nil, err
	}
	history, err := repositories.NewIssueRepository(c.DB).GetAllRecords()
	if err != nil {
		return nil, err
	}
	var periods []models.ForecastPeriod
	if err := c.DB.Find(&periods).Error; err != nil {
		return nil, err
	}
	var items []models.Item
	if err := c.DB.Find(&items).Error; err != nil {
		return nil, err
	}

	itemByCode := make(map[string]models.Item, len(items))
	for _, it := range items {
		itemByCode[it.ItemCode] = it
	}

	rows := services.Reconcile(records, history, periods, filter, time.Now())

	report := make([]varianceReportRow, 0, len(rows))
	for _, row := range rows {
		item := itemByCode[row.ItemCode]
		report = append(report, varianceReportRow{
			VarianceRow: row,
			ItemName:    item.ItemName,
			Uom:         item.Uom,
		})
	}
	return report, nil
}

// GetVarianceReport joins the ledger against issue history per scope filter.
func (c *ForecastController) GetVarianceReport(ctx *fiber.Ctx) error {
	report, err := c.getVarianceRows(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    report,
		"total":   len(report),
	})
}

// ExportVarianceReport streams the reconciliation as an Excel download.
func (c *ForecastController) ExportVarianceReport(ctx *fiber.Ctx) error {
	report, err := c.getVarianceRows(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Buat file Excel baru
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Period", "Location", "ItemId", "Description", "Unit",
		"Period-Forecast", "Grand-Total", "Issued-Qty", "Variance", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range report {
		values := []interface{}{row.PeriodCode, row.LocationCode, row.ItemCode,
			row.ItemName, row.Uom, row.ForecastQty, row.GrandTotal,
			row.IssuedQty, row.Variance, row.Status}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="variance_report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

package controllers

import (
	"fmt"
	"strconv"
	"time"

	"wareflow-app/models"
	"wareflow-app/wms/master/division"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(DB *gorm.DB) *BackupController {
	return &BackupController{DB: DB}
}

func setSheetHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

// ExportBackup writes the whole master data set and the forecast ledger
// into one workbook, one sheet per collection.
func (c *BackupController) ExportBackup(ctx *fiber.Ctx) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := c.writeItemSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.writeMachineSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.writeLocationSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.writeSectorSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.writeDivisionSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.writeBOMSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.writeForecastSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.writeStockSheet(f); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Sheet1 default dari excelize, hapus setelah sheet lain jadi.
	f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("wareflow_backup_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+fileName)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return nil
}

func (c *BackupController) writeItemSheet(f *excelize.File) error {
	var items []models.Item
	if err := c.DB.Find(&items).Error; err != nil {
		return err
	}

	sheet := "Items"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"ItemCode", "ItemName", "Uom", "Category", "MinLevel", "MaxLevel", "IsAdHoc"})
	for i, item := range items {
		setRow(f, sheet, i+2, []interface{}{
			item.ItemCode, item.ItemName, item.Uom, item.Category,
			item.MinLevel, item.MaxLevel, strconv.FormatBool(item.IsAdHoc),
		})
	}
	return nil
}

func (c *BackupController) writeMachineSheet(f *excelize.File) error {
	var machines []models.Machine
	if err := c.DB.Find(&machines).Error; err != nil {
		return err
	}

	sheet := "Machines"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"MachineCode", "Category", "ModelNo", "Brand", "SerialNo", "LocationCode", "SectorCode", "DivisionCode"})
	for i, m := range machines {
		setRow(f, sheet, i+2, []interface{}{
			m.MachineCode, m.Category, m.ModelNo, m.Brand, m.SerialNo,
			m.LocationCode, m.SectorCode, m.DivisionCode,
		})
	}
	return nil
}

func (c *BackupController) writeLocationSheet(f *excelize.File) error {
	var locations []models.Location
	if err := c.DB.Find(&locations).Error; err != nil {
		return err
	}

	sheet := "Locations"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"LocationCode", "Name", "Region"})
	for i, l := range locations {
		setRow(f, sheet, i+2, []interface{}{l.LocationCode, l.Name, l.Region})
	}
	return nil
}

func (c *BackupController) writeSectorSheet(f *excelize.File) error {
	var sectors []models.Sector
	if err := c.DB.Find(&sectors).Error; err != nil {
		return err
	}

	sheet := "Sectors"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"SectorCode", "Name", "LocationCode"})
	for i, s := range sectors {
		setRow(f, sheet, i+2, []interface{}{s.SectorCode, s.Name, s.LocationCode})
	}
	return nil
}

func (c *BackupController) writeDivisionSheet(f *excelize.File) error {
	var divisions []division.Division
	if err := c.DB.Find(&divisions).Error; err != nil {
		return err
	}

	sheet := "Divisions"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"Code", "Name", "Description"})
	for i, d := range divisions {
		setRow(f, sheet, i+2, []interface{}{d.Code, d.Name, d.Description})
	}
	return nil
}

func (c *BackupController) writeBOMSheet(f *excelize.File) error {
	var records []models.BOMRecord
	if err := c.DB.Find(&records).Error; err != nil {
		return err
	}

	sheet := "BOM"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"MachineCategory", "ModelNo", "ItemCode", "Quantity"})
	for i, r := range records {
		setRow(f, sheet, i+2, []interface{}{r.MachineCategory, r.ModelNo, r.ItemCode, r.Quantity})
	}
	return nil
}

func (c *BackupController) writeForecastSheet(f *excelize.File) error {
	var records []models.ForecastRecord
	if err := c.DB.Find(&records).Error; err != nil {
		return err
	}

	sheet := "Forecast"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"LocationCode", "DivisionCode", "SectorCode", "ItemCode", "PeriodCode", "Quantity", "LastUpdated"})
	for i, r := range records {
		setRow(f, sheet, i+2, []interface{}{
			r.LocationCode, r.DivisionCode, r.SectorCode, r.ItemCode,
			r.PeriodCode, r.Quantity, r.LastUpdated.Format("2006-01-02 15:04:05"),
		})
	}
	return nil
}

func (c *BackupController) writeStockSheet(f *excelize.File) error {
	var balances []models.StockBalance
	if err := c.DB.Find(&balances).Error; err != nil {
		return err
	}

	sheet := "Stock"
	f.NewSheet(sheet)
	setSheetHeader(f, sheet, []string{"LocationCode", "ItemCode", "QtyOnhand"})
	for i, b := range balances {
		setRow(f, sheet, i+2, []interface{}{b.LocationCode, b.ItemCode, b.QtyOnhand})
	}
	return nil
}

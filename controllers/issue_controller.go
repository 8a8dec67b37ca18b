package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"wareflow-app/controllers/idgen"
	"wareflow-app/models"
	"wareflow-app/repositories"
	"wareflow-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IssueController struct {
	DB *gorm.DB
}

func NewIssueController(DB *gorm.DB) *IssueController {
	return &IssueController{DB: DB}
}

// GenerateIssueNo membuat nomor dokumen IRyyyymmdd-0001, reset per hari.
func (c *IssueController) GenerateIssueNo() (string, error) {
	var lastRequest models.IssueRequest

	if err := c.DB.Last(&lastRequest).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	today := time.Now().Format("20060102")

	var issueNo string
	if lastRequest.IssueNo != "" && len(lastRequest.IssueNo) >= 15 && lastRequest.IssueNo[2:10] == today {
		lastSeq, _ := strconv.Atoi(lastRequest.IssueNo[len(lastRequest.IssueNo)-4:])
		issueNo = fmt.Sprintf("IR%s-%04d", today, lastSeq+1)
	} else {
		issueNo = fmt.Sprintf("IR%s-%04d", today, 1)
	}

	return issueNo, nil
}

func (c *IssueController) CreateIssueRequest(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		LocationCode string `json:"location_code" validate:"required"`
		SectorCode   string `json:"sector_code"`
		DivisionCode string `json:"division_code"`
		Remarks      string `json:"remarks"`
		Details      []struct {
			ItemCode string  `json:"item_code" validate:"required"`
			Quantity float64 `json:"quantity" validate:"required,gt=0"`
			Remarks  string  `json:"remarks"`
		} `json:"details" validate:"required,min=1,dive"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	issueNo, err := c.GenerateIssueNo()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	request := models.IssueRequest{
		IssueNo:      issueNo,
		RefID:        types.SnowflakeID(idgen.GenerateID()),
		LocationCode: input.LocationCode,
		SectorCode:   input.SectorCode,
		DivisionCode: input.DivisionCode,
		RequestedBy:  userID,
		Status:       models.IssueStatusOpen,
		Remarks:      input.Remarks,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	for _, d := range input.Details {
		request.Details = append(request.Details, models.IssueRequestDetail{
			ItemCode:  d.ItemCode,
			Quantity:  d.Quantity,
			Remarks:   d.Remarks,
			CreatedBy: userID,
			UpdatedBy: userID,
		})
	}

	if err := c.DB.Create(&request).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Issue request created successfully",
		"data":    request,
	})
}

func (c *IssueController) GetAllIssueRequests(ctx *fiber.Ctx) error {
	var requests []models.IssueRequest

	query := c.DB.Preload("Details")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if location := ctx.Query("location"); location != "" {
		query = query.Where("location_code = ?", location)
	}

	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    requests,
		"total":   len(requests),
	})
}

func (c *IssueController) GetIssueRequestByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var request models.IssueRequest

	if err := c.DB.Preload("Details").First(&request, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue request not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    request,
	})
}

// ApproveIssueRequest memeriksa stok tersedia lalu menandai approved.
func (c *IssueController) ApproveIssueRequest(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var request models.IssueRequest
	if err := c.DB.Preload("Details").First(&request, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue request not found"})
	}

	if request.Status != models.IssueStatusOpen {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open requests can be approved, current status: " + request.Status,
		})
	}

	// Cek ketersediaan stok per item
	stockRepo := repositories.NewStockRepository(c.DB)
	for _, d := range request.Details {
		balance, err := stockRepo.GetBalance(request.LocationCode, d.ItemCode)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		available := 0.0
		if balance != nil {
			available = balance.QtyOnhand
		}
		if available < d.Quantity {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Insufficient stock for %s: available %.2f, requested %.2f", d.ItemCode, available, d.Quantity),
			})
		}
	}

	request.Status = models.IssueStatusApproved
	request.ApprovedBy = userID
	request.UpdatedBy = userID

	if err := c.DB.Save(&request).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Issue request approved",
		"data":    request,
	})
}

func (c *IssueController) RejectIssueRequest(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		Remarks string `json:"remarks"`
	}
	ctx.BodyParser(&input)

	var request models.IssueRequest
	if err := c.DB.First(&request, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue request not found"})
	}

	if request.Status != models.IssueStatusOpen {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open requests can be rejected, current status: " + request.Status,
		})
	}

	request.Status = models.IssueStatusRejected
	request.ApprovedBy = userID
	request.UpdatedBy = userID
	if input.Remarks != "" {
		request.Remarks = input.Remarks
	}

	if err := c.DB.Save(&request).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Issue request rejected",
		"data":    request,
	})
}

// PostIssueRequest mengeluarkan barang: stok berkurang dan baris history
// issue_records ditulis. Semua dalam satu transaksi.
func (c *IssueController) PostIssueRequest(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := int(ctx.Locals("userID").(float64))

	var request models.IssueRequest
	if err := c.DB.Preload("Details").First(&request, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue request not found"})
	}

	if request.Status != models.IssueStatusApproved {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only approved requests can be issued, current status: " + request.Status,
		})
	}

	now := time.Now()

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		stockRepo := repositories.NewStockRepository(tx)

		for _, d := range request.Details {
			balance, err := stockRepo.GetBalance(request.LocationCode, d.ItemCode)
			if err != nil {
				return err
			}
			if balance == nil || balance.QtyOnhand < d.Quantity {
				return fmt.Errorf("insufficient stock for %s", d.ItemCode)
			}

			if err := stockRepo.AddQuantity(request.LocationCode, d.ItemCode, -d.Quantity, userID); err != nil {
				return err
			}

			record := models.IssueRecord{
				IssueNo:      request.IssueNo,
				Timestamp:    now,
				LocationCode: request.LocationCode,
				ItemCode:     d.ItemCode,
				Quantity:     d.Quantity,
				Source:       "app",
				CreatedBy:    userID,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		request.Status = models.IssueStatusIssued
		request.UpdatedBy = userID
		return tx.Save(&request).Error
	})

	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Issue request posted",
		"data":    request,
	})
}

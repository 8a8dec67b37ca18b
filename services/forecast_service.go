package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wareflow-app/models"
	"wareflow-app/repositories"

	"gorm.io/gorm"
)

var ErrPeriodClosed = errors.New("period closed")

type ForecastScope struct {
	LocationCode string `json:"location_code"`
	SectorCode   string `json:"sector_code"`
	DivisionCode string `json:"division_code"`
	PeriodCode   string `json:"period_code"`
}

type ForecastService struct {
	db *gorm.DB
}

func NewForecastService(db *gorm.DB) *ForecastService {
	return &ForecastService{db: db}
}

// GetScopedRecords pre-populates the editing grid for one slice.
func (s *ForecastService) GetScopedRecords(scope ForecastScope) ([]models.ForecastRecord, error) {
	repo := repositories.NewForecastRepository(s.db)
	return repo.GetByScope(scope.LocationCode, scope.DivisionCode, scope.PeriodCode)
}

// Commit saves an edit buffer (item code → quantity) into one
// (location, division, period) slice. Positive quantities upsert, zero or
// negative quantities remove the record. The whole buffer commits in one
// transaction; records outside the slice are untouched.
func (s *ForecastService) Commit(scope ForecastScope, buffer map[string]float64, userID int, isAdmin bool) error {
	if err := s.checkPeriodOpen(scope.PeriodCode, isAdmin); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewForecastRepository(tx)
		now := time.Now()

		for itemCode, qty := range buffer {
			if qty <= 0 {
				if err := repo.DeleteByNaturalKey(scope.LocationCode, scope.DivisionCode, itemCode, scope.PeriodCode); err != nil {
					return err
				}
				continue
			}

			existing, err := repo.FindByNaturalKey(scope.LocationCode, scope.DivisionCode, itemCode, scope.PeriodCode)
			if err != nil {
				return err
			}

			if existing != nil {
				existing.SectorCode = scope.SectorCode
				existing.Quantity = qty
				existing.LastUpdated = now
				existing.UpdatedByID = userID
				existing.UpdatedBy = userID
				if err := repo.Save(existing); err != nil {
					return err
				}
				continue
			}

			record := models.ForecastRecord{
				LocationCode: scope.LocationCode,
				SectorCode:   scope.SectorCode,
				DivisionCode: scope.DivisionCode,
				ItemCode:     itemCode,
				PeriodCode:   scope.PeriodCode,
				Quantity:     qty,
				LastUpdated:  now,
				UpdatedByID:  userID,
				CreatedBy:    userID,
				UpdatedBy:    userID,
			}
			if err := repo.Create(&record); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *ForecastService) checkPeriodOpen(periodCode string, isAdmin bool) error {
	var period models.ForecastPeriod
	if err := s.db.Where("period_code = ?", periodCode).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("period not found: %s", periodCode)
		}
		return err
	}
	if period.Status != models.PeriodOpen && !isAdmin {
		return ErrPeriodClosed
	}
	return nil
}

//====================================================================
// BEGIN BULK IMPORT
//====================================================================

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportSummary struct {
	TotalRows    int              `json:"total_rows"`
	SuccessCount int              `json:"success_count"`
	ErrorCount   int              `json:"error_count"`
	Errors       []ImportRowError `json:"errors,omitempty"`
}

// importColumns maps normalized header synonyms to a canonical column name.
var importColumns = map[string]string{
	"periodid":     "period",
	"period":       "period",
	"periodcode":   "period",
	"locationid":   "location",
	"location":     "location",
	"locationcode": "location",
	"sectorid":     "sector",
	"sector":       "sector",
	"sectorcode":   "sector",
	"divisionid":   "division",
	"division":     "division",
	"divisioncode": "division",
	"itemcode":     "item",
	"itemid":       "item",
	"item":         "item",
	"quantity":     "quantity",
	"qty":          "quantity",
	"forecastqty":  "quantity",
}

// normalizeHeader lower-cases and strips whitespace and punctuation so
// "Item Code", "item_code" and "ITEM-CODE" all match.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BulkImport merges tabular rows (header row first) into the ledger across
// scopes. Rows are validated independently: an unknown item or location, a
// missing key or a bad quantity skips the row and counts it, never aborts
// the batch. Duplicate natural keys within the batch are last-writer-wins
// because each row upserts by natural key.
func (s *ForecastService) BulkImport(rows [][]string, userID int, isAdmin bool) (ImportSummary, error) {
	summary := ImportSummary{}

	if len(rows) < 2 {
		return summary, errors.New("file must contain a header row and at least one data row")
	}

	colIndex := make(map[string]int)
	for i, h := range rows[0] {
		if canonical, ok := importColumns[normalizeHeader(h)]; ok {
			if _, taken := colIndex[canonical]; !taken {
				colIndex[canonical] = i
			}
		}
	}
	for _, required := range []string{"period", "location", "sector", "division", "item", "quantity"} {
		if _, ok := colIndex[required]; !ok {
			return summary, fmt.Errorf("missing required column: %s", required)
		}
	}

	// Lookup sets untuk validasi referensi
	itemSet, err := s.itemCodeSet()
	if err != nil {
		return summary, err
	}
	locationSet, err := s.locationCodeSet()
	if err != nil {
		return summary, err
	}
	periodByCode, err := s.periodMap()
	if err != nil {
		return summary, err
	}

	summary.TotalRows = len(rows) - 1
	now := time.Now()

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowNum := i + 1

		get := func(col string) string {
			idx := colIndex[col]
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		periodCode := get("period")
		locationCode := get("location")
		sectorCode := get("sector")
		divisionCode := get("division")
		itemCode := get("item")
		qtyStr := get("quantity")

		// Skip completely empty rows
		if periodCode == "" && locationCode == "" && itemCode == "" && qtyStr == "" {
			summary.TotalRows--
			continue
		}

		if periodCode == "" || locationCode == "" || divisionCode == "" || itemCode == "" {
			s.addRowError(&summary, rowNum, "missing required key field")
			continue
		}

		if !itemSet[itemCode] {
			s.addRowError(&summary, rowNum, fmt.Sprintf("unknown item: %s", itemCode))
			continue
		}
		if !locationSet[locationCode] {
			s.addRowError(&summary, rowNum, fmt.Sprintf("unknown location: %s", locationCode))
			continue
		}

		qty, err := strconv.ParseFloat(qtyStr, 64)
		if err != nil {
			s.addRowError(&summary, rowNum, fmt.Sprintf("invalid quantity: %s", qtyStr))
			continue
		}
		if qty <= 0 {
			s.addRowError(&summary, rowNum, fmt.Sprintf("quantity must be positive: %s", qtyStr))
			continue
		}

		if period, known := periodByCode[periodCode]; known {
			if period.Status != models.PeriodOpen && !isAdmin {
				s.addRowError(&summary, rowNum, fmt.Sprintf("period closed: %s", periodCode))
				continue
			}
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			repo := repositories.NewForecastRepository(tx)

			existing, err := repo.FindByNaturalKey(locationCode, divisionCode, itemCode, periodCode)
			if err != nil {
				return err
			}
			if existing != nil {
				existing.SectorCode = sectorCode
				existing.Quantity = qty
				existing.LastUpdated = now
				existing.UpdatedByID = userID
				existing.UpdatedBy = userID
				return repo.Save(existing)
			}

			record := models.ForecastRecord{
				LocationCode: locationCode,
				SectorCode:   sectorCode,
				DivisionCode: divisionCode,
				ItemCode:     itemCode,
				PeriodCode:   periodCode,
				Quantity:     qty,
				LastUpdated:  now,
				UpdatedByID:  userID,
				CreatedBy:    userID,
				UpdatedBy:    userID,
			}
			return repo.Create(&record)
		})
		if err != nil {
			s.addRowError(&summary, rowNum, fmt.Sprintf("save failed: %s", err.Error()))
			continue
		}

		summary.SuccessCount++
	}

	return summary, nil
}

func (s *ForecastService) addRowError(summary *ImportSummary, row int, message string) {
	summary.ErrorCount++
	summary.Errors = append(summary.Errors, ImportRowError{Row: row, Message: message})
}

func (s *ForecastService) itemCodeSet() (map[string]bool, error) {
	var codes []string
	if err := s.db.Model(&models.Item{}).Pluck("item_code", &codes).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set, nil
}

func (s *ForecastService) locationCodeSet() (map[string]bool, error) {
	var codes []string
	if err := s.db.Model(&models.Location{}).Pluck("location_code", &codes).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set, nil
}

func (s *ForecastService) periodMap() (map[string]models.ForecastPeriod, error) {
	var periods []models.ForecastPeriod
	if err := s.db.Find(&periods).Error; err != nil {
		return nil, err
	}
	byCode := make(map[string]models.ForecastPeriod, len(periods))
	for _, p := range periods {
		byCode[p.PeriodCode] = p
	}
	return byCode, nil
}

//====================================================================
// END BULK IMPORT
//====================================================================

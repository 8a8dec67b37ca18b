package repositories

import (
	"errors"

	"wareflow-app/models"

	"gorm.io/gorm"
)

type ForecastRepository struct {
	db *gorm.DB
}

func NewForecastRepository(db *gorm.DB) *ForecastRepository {
	return &ForecastRepository{db}
}

// GetByScope returns every record in one (location, division, period) slice.
// Sector is carried on the record but is not part of the slice key.
func (r *ForecastRepository) GetByScope(locationCode, divisionCode, periodCode string) ([]models.ForecastRecord, error) {
	var records []models.ForecastRecord
	err := r.db.
		Where("location_code = ? AND division_code = ? AND period_code = ?", locationCode, divisionCode, periodCode).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ForecastRepository) GetAll() ([]models.ForecastRecord, error) {
	var records []models.ForecastRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ForecastRepository) FindByNaturalKey(locationCode, divisionCode, itemCode, periodCode string) (*models.ForecastRecord, error) {
	var record models.ForecastRecord
	err := r.db.
		Where("location_code = ? AND division_code = ? AND item_code = ? AND period_code = ?",
			locationCode, divisionCode, itemCode, periodCode).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ForecastRepository) Create(record *models.ForecastRecord) error {
	return r.db.Create(record).Error
}

func (r *ForecastRepository) Save(record *models.ForecastRecord) error {
	return r.db.Save(record).Error
}

// DeleteByNaturalKey removes a record for good. Hard delete so the natural
// key can be reused by a later save; a soft-deleted row would still hold the
// unique index.
func (r *ForecastRepository) DeleteByNaturalKey(locationCode, divisionCode, itemCode, periodCode string) error {
	return r.db.Unscoped().
		Where("location_code = ? AND division_code = ? AND item_code = ? AND period_code = ?",
			locationCode, divisionCode, itemCode, periodCode).
		Delete(&models.ForecastRecord{}).Error
}

package repositories

import (
	"errors"

	"wareflow-app/models"

	"gorm.io/gorm"
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db}
}

func (r *StockRepository) GetBalance(locationCode, itemCode string) (*models.StockBalance, error) {
	var balance models.StockBalance
	err := r.db.Where("location_code = ? AND item_code = ?", locationCode, itemCode).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

func (r *StockRepository) GetAllBalances() ([]models.StockBalance, error) {
	var balances []models.StockBalance
	if err := r.db.Find(&balances).Error; err != nil {
		return nil, err
	}
	return balances, nil
}

// AddQuantity adjusts the on-hand balance, creating the row when missing.
// Negative delta decrements; callers check availability first.
func (r *StockRepository) AddQuantity(locationCode, itemCode string, delta float64, userID int) error {
	balance, err := r.GetBalance(locationCode, itemCode)
	if err != nil {
		return err
	}

	if balance == nil {
		balance = &models.StockBalance{
			LocationCode: locationCode,
			ItemCode:     itemCode,
			QtyOnhand:    delta,
			CreatedBy:    userID,
			UpdatedBy:    userID,
		}
		return r.db.Create(balance).Error
	}

	balance.QtyOnhand += delta
	balance.UpdatedBy = userID
	return r.db.Save(balance).Error
}

// SetQuantity overwrites the on-hand balance, used when an approved stock
// adjustment posts a counted figure.
func (r *StockRepository) SetQuantity(locationCode, itemCode string, qty float64, userID int) error {
	balance, err := r.GetBalance(locationCode, itemCode)
	if err != nil {
		return err
	}

	if balance == nil {
		balance = &models.StockBalance{
			LocationCode: locationCode,
			ItemCode:     itemCode,
			QtyOnhand:    qty,
			CreatedBy:    userID,
			UpdatedBy:    userID,
		}
		return r.db.Create(balance).Error
	}

	balance.QtyOnhand = qty
	balance.UpdatedBy = userID
	return r.db.Save(balance).Error
}

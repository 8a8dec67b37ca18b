package repositories

import (
	"wareflow-app/models"

	"gorm.io/gorm"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db}
}

type issuedPerItem struct {
	LocationCode string  `json:"location_code"`
	ItemCode     string  `json:"item_code"`
	ItemName     string  `json:"item_name"`
	Quantity     float64 `json:"quantity"`
}

// GetIssuedSummary rolls up issued quantity per location and item.
func (r *IssueRepository) GetIssuedSummary() ([]issuedPerItem, error) {

	sqlIssued := `select a.location_code, a.item_code, b.item_name,
	sum(a.quantity) as quantity
	from issue_records a
	left join items b on a.item_code = b.item_code
	group by a.location_code, a.item_code, b.item_name
	`

	var rows []issuedPerItem

	if err := r.db.Raw(sqlIssued).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *IssueRepository) GetAllRecords() ([]models.IssueRecord, error) {
	var records []models.IssueRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

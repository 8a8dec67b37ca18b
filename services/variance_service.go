package services

import (
	"sort"
	"time"

	"wareflow-app/models"
)

const (
	StatusNoIssue    = "No Issue"
	StatusOverIssue  = "Over-Issue"
	StatusUnderIssue = "Under-Issue"
	StatusExactIssue = "Exact Issue"
)

type VarianceFilter struct {
	LocationCode  string
	SectorCode    string
	DivisionCode  string
	PeriodCode    string
	OverrideStart *time.Time
	OverrideEnd   *time.Time
}

type VarianceRow struct {
	PeriodCode   string  `json:"period_code"`
	LocationCode string  `json:"location_code"`
	ItemCode     string  `json:"item_code"`
	ForecastQty  float64 `json:"forecast_qty"`
	GrandTotal   float64 `json:"grand_total"`
	IssuedQty    float64 `json:"issued_qty"`
	Variance     float64 `json:"variance"`
	Status       string  `json:"status"`
}

type locItemKey struct {
	location string
	item     string
}

type rowKey struct {
	location string
	item     string
	period   string
}

// Reconcile joins forecast records against issue history and classifies each
// (location, item, period) triple. History is indexed by (location, item)
// before the per-row loop; forecast quantities are summed defensively in
// case duplicate natural keys slipped in through an import. grandTotal is
// computed over the full ledger so its value does not depend on the active
// filter.
func Reconcile(records []models.ForecastRecord, history []models.IssueRecord, periods []models.ForecastPeriod, filter VarianceFilter, now time.Time) []VarianceRow {
	periodByCode := make(map[string]models.ForecastPeriod, len(periods))
	for _, p := range periods {
		periodByCode[p.PeriodCode] = p
	}

	grandTotals := make(map[locItemKey]float64)
	for _, r := range records {
		grandTotals[locItemKey{r.LocationCode, r.ItemCode}] += r.Quantity
	}

	historyIndex := make(map[locItemKey][]models.IssueRecord)
	for _, h := range history {
		k := locItemKey{h.LocationCode, h.ItemCode}
		historyIndex[k] = append(historyIndex[k], h)
	}

	forecastQty := make(map[rowKey]float64)
	for _, r := range records {
		if filter.LocationCode != "" && r.LocationCode != filter.LocationCode {
			continue
		}
		if filter.SectorCode != "" && r.SectorCode != filter.SectorCode {
			continue
		}
		if filter.DivisionCode != "" && r.DivisionCode != filter.DivisionCode {
			continue
		}
		if filter.PeriodCode != "" && r.PeriodCode != filter.PeriodCode {
			continue
		}
		forecastQty[rowKey{r.LocationCode, r.ItemCode, r.PeriodCode}] += r.Quantity
	}

	overrideActive := filter.OverrideStart != nil && filter.OverrideEnd != nil

	rows := make([]VarianceRow, 0, len(forecastQty))
	for k, fq := range forecastQty {
		period, periodKnown := periodByCode[k.period]

		var start, end time.Time
		var boundsKnown bool
		if overrideActive {
			// Override fully replaces the period's own bounds.
			start, end = *filter.OverrideStart, *filter.OverrideEnd
			boundsKnown = true
		} else if periodKnown {
			start, end = period.StartDate, period.EndDate
			boundsKnown = true
		}

		var issued float64
		if boundsKnown {
			for _, h := range historyIndex[locItemKey{k.location, k.item}] {
				if h.Timestamp.Before(start) || h.Timestamp.After(end) {
					continue
				}
				issued += h.Quantity
			}
		}

		status := classifyVariance(fq, issued, period, periodKnown, now)

		rows = append(rows, VarianceRow{
			PeriodCode:   k.period,
			LocationCode: k.location,
			ItemCode:     k.item,
			ForecastQty:  fq,
			GrandTotal:   grandTotals[locItemKey{k.location, k.item}],
			IssuedQty:    issued,
			Variance:     fq - issued,
			Status:       status,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PeriodCode != rows[j].PeriodCode {
			return rows[i].PeriodCode < rows[j].PeriodCode
		}
		if rows[i].LocationCode != rows[j].LocationCode {
			return rows[i].LocationCode < rows[j].LocationCode
		}
		return rows[i].ItemCode < rows[j].ItemCode
	})

	return rows
}

// classifyVariance applies the status checks in precedence order: No Issue
// short-circuits even though issued 0 would also satisfy Under-Issue.
func classifyVariance(forecast, issued float64, period models.ForecastPeriod, periodKnown bool, now time.Time) string {
	if issued == 0 && periodKnown && period.EndDate.Before(now) {
		return StatusNoIssue
	}
	if issued > forecast {
		return StatusOverIssue
	}
	if issued < forecast {
		return StatusUnderIssue
	}
	return StatusExactIssue
}

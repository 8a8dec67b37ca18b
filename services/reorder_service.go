package services

import (
	"sort"
	"time"

	"wareflow-app/models"

	"github.com/shopspring/decimal"
)

const (
	ReorderBelowMin  = "below-min"
	ReorderOK        = "ok"
	ReorderOverstock = "overstock"
)

type ReorderSuggestion struct {
	LocationCode  string          `json:"location_code"`
	ItemCode      string          `json:"item_code"`
	ItemName      string          `json:"item_name"`
	Uom           string          `json:"uom"`
	QtyOnhand     decimal.Decimal `json:"qty_onhand"`
	AvgMonthlyUse decimal.Decimal `json:"avg_monthly_use"`
	MinLevel      decimal.Decimal `json:"min_level"`
	MaxLevel      decimal.Decimal `json:"max_level"`
	SuggestedQty  decimal.Decimal `json:"suggested_qty"`
	Flag          string          `json:"flag"`
}

// AnalyzeReorder computes a reorder suggestion per stocked (location, item)
// pair: average monthly consumption over the trailing window, on-hand
// against the item's min/max levels, and a top-up quantity when below min.
// Items with neither a balance nor history in the window produce no row.
func AnalyzeReorder(items []models.Item, balances []models.StockBalance, history []models.IssueRecord, windowMonths int, now time.Time) []ReorderSuggestion {
	if windowMonths <= 0 {
		windowMonths = 3
	}
	windowStart := now.AddDate(0, -windowMonths, 0)

	itemByCode := make(map[string]models.Item, len(items))
	for _, it := range items {
		itemByCode[it.ItemCode] = it
	}

	onhand := make(map[locItemKey]decimal.Decimal)
	for _, b := range balances {
		k := locItemKey{b.LocationCode, b.ItemCode}
		onhand[k] = onhand[k].Add(decimal.NewFromFloat(b.QtyOnhand))
	}

	consumed := make(map[locItemKey]decimal.Decimal)
	for _, h := range history {
		if h.Timestamp.Before(windowStart) || h.Timestamp.After(now) {
			continue
		}
		k := locItemKey{h.LocationCode, h.ItemCode}
		consumed[k] = consumed[k].Add(decimal.NewFromFloat(h.Quantity))
	}

	keys := make(map[locItemKey]bool, len(onhand)+len(consumed))
	for k := range onhand {
		keys[k] = true
	}
	for k := range consumed {
		keys[k] = true
	}

	months := decimal.NewFromInt(int64(windowMonths))

	suggestions := make([]ReorderSuggestion, 0, len(keys))
	for k := range keys {
		item, known := itemByCode[k.item]
		if !known {
			continue
		}

		stock := onhand[k]
		avg := consumed[k].Div(months).Round(2)
		minLevel := decimal.NewFromFloat(item.MinLevel)
		maxLevel := decimal.NewFromFloat(item.MaxLevel)

		flag := ReorderOK
		suggested := decimal.Zero
		switch {
		case stock.LessThan(minLevel):
			flag = ReorderBelowMin
			suggested = maxLevel.Sub(stock)
			if suggested.IsNegative() {
				suggested = decimal.Zero
			}
		case maxLevel.IsPositive() && stock.GreaterThan(maxLevel):
			flag = ReorderOverstock
		}

		suggestions = append(suggestions, ReorderSuggestion{
			LocationCode:  k.location,
			ItemCode:      k.item,
			ItemName:      item.ItemName,
			Uom:           item.Uom,
			QtyOnhand:     stock,
			AvgMonthlyUse: avg,
			MinLevel:      minLevel,
			MaxLevel:      maxLevel,
			SuggestedQty:  suggested,
			Flag:          flag,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].LocationCode != suggestions[j].LocationCode {
			return suggestions[i].LocationCode < suggestions[j].LocationCode
		}
		return suggestions[i].ItemCode < suggestions[j].ItemCode
	})

	return suggestions
}

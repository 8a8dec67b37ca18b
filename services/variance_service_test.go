package services

import (
	"testing"
	"time"

	"wareflow-app/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

var (
	p1Start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p1End   = time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	p2Start = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	p2End   = time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)
	testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
)

func testPeriods() []models.ForecastPeriod {
	return []models.ForecastPeriod{
		{PeriodCode: "2025-P1", StartDate: p1Start, EndDate: p1End, Status: models.PeriodClosed},
		{PeriodCode: "2025-P2", StartDate: p2Start, EndDate: p2End, Status: models.PeriodOpen},
	}
}

func findRow(rows []VarianceRow, period, location, item string) *VarianceRow {
	for i := range rows {
		if rows[i].PeriodCode == period && rows[i].LocationCode == location && rows[i].ItemCode == item {
			return &rows[i]
		}
	}
	return nil
}

func TestReconcileClassifiesStatuses(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-OVER", PeriodCode: "2025-P1", Quantity: 10},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-UNDER", PeriodCode: "2025-P1", Quantity: 10},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-EXACT", PeriodCode: "2025-P1", Quantity: 10},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-NONE", PeriodCode: "2025-P1", Quantity: 10},
	}
	history := []models.IssueRecord{
		{LocationCode: "EST-A", ItemCode: "ITM-OVER", Quantity: 15, Timestamp: p1Start.AddDate(0, 0, 5)},
		{LocationCode: "EST-A", ItemCode: "ITM-UNDER", Quantity: 4, Timestamp: p1Start.AddDate(0, 0, 5)},
		{LocationCode: "EST-A", ItemCode: "ITM-EXACT", Quantity: 10, Timestamp: p1Start.AddDate(0, 0, 5)},
	}

	rows := Reconcile(records, history, testPeriods(), VarianceFilter{}, testNow)

	assert.Equal(t, StatusOverIssue, findRow(rows, "2025-P1", "EST-A", "ITM-OVER").Status)
	assert.Equal(t, StatusUnderIssue, findRow(rows, "2025-P1", "EST-A", "ITM-UNDER").Status)
	assert.Equal(t, StatusExactIssue, findRow(rows, "2025-P1", "EST-A", "ITM-EXACT").Status)
	// Zero issued in an elapsed period reports No Issue, not Under-Issue.
	assert.Equal(t, StatusNoIssue, findRow(rows, "2025-P1", "EST-A", "ITM-NONE").Status)
}

func TestReconcileIgnoresHistoryOutsidePeriodBounds(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 20},
	}
	history := []models.IssueRecord{
		{LocationCode: "EST-A", ItemCode: "ITM-001", Quantity: 5, Timestamp: p1Start.AddDate(0, 0, 10)},
		{LocationCode: "EST-A", ItemCode: "ITM-001", Quantity: 7, Timestamp: p2Start.AddDate(0, 0, 3)}, // outside P1
		{LocationCode: "EST-B", ItemCode: "ITM-001", Quantity: 9, Timestamp: p1Start.AddDate(0, 0, 10)}, // other location
	}

	rows := Reconcile(records, history, testPeriods(), VarianceFilter{}, testNow)

	row := findRow(rows, "2025-P1", "EST-A", "ITM-001")
	assert.Equal(t, 5.0, row.IssuedQty)
	assert.Equal(t, 15.0, row.Variance)
}

func TestReconcileOverrideRangeReplacesPeriodBounds(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 20},
	}
	history := []models.IssueRecord{
		{LocationCode: "EST-A", ItemCode: "ITM-001", Quantity: 5, Timestamp: p1Start.AddDate(0, 0, 10)},
		{LocationCode: "EST-A", ItemCode: "ITM-001", Quantity: 7, Timestamp: p2Start.AddDate(0, 0, 3)},
	}

	start := p1Start
	end := p2End
	filter := VarianceFilter{OverrideStart: &start, OverrideEnd: &end}

	rows := Reconcile(records, history, testPeriods(), filter, testNow)

	// Both issues fall inside the override window.
	assert.Equal(t, 12.0, findRow(rows, "2025-P1", "EST-A", "ITM-001").IssuedQty)
}

func TestReconcileGrandTotalSpansFullLedger(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 10},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P2", Quantity: 30},
	}

	// Filtered to P1 only, yet grand total still covers both periods.
	rows := Reconcile(records, nil, testPeriods(), VarianceFilter{PeriodCode: "2025-P1"}, testNow)

	assert.Len(t, rows, 1)
	assert.Equal(t, 10.0, rows[0].ForecastQty)
	assert.Equal(t, 40.0, rows[0].GrandTotal)
}

func TestReconcileSumsDuplicateNaturalKeys(t *testing.T) {
	// The ledger itself upserts duplicates away, but the reconciler must not
	// assume a clean feed.
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 10},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 15},
	}

	rows := Reconcile(records, nil, testPeriods(), VarianceFilter{}, testNow)

	assert.Len(t, rows, 1)
	assert.Equal(t, 25.0, rows[0].ForecastQty)
	assert.Equal(t, 25.0, rows[0].GrandTotal)
}

func TestReconcileUnknownPeriodStillProducesRow(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2099-P9", Quantity: 10},
	}
	history := []models.IssueRecord{
		{LocationCode: "EST-A", ItemCode: "ITM-001", Quantity: 5, Timestamp: p1Start},
	}

	rows := Reconcile(records, history, testPeriods(), VarianceFilter{}, testNow)

	assert.Len(t, rows, 1)
	// No bounds known, so nothing can be attributed to the row.
	assert.Equal(t, 0.0, rows[0].IssuedQty)
	assert.Equal(t, StatusUnderIssue, rows[0].Status)
}

func TestReconcileFilterNarrowsRows(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", SectorCode: "SEC-01", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P2", Quantity: 10},
		{LocationCode: "EST-B", SectorCode: "SEC-03", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P2", Quantity: 20},
	}

	rows := Reconcile(records, nil, testPeriods(), VarianceFilter{LocationCode: "EST-A"}, testNow)
	assert.Len(t, rows, 1)
	assert.Equal(t, "EST-A", rows[0].LocationCode)

	rows = Reconcile(records, nil, testPeriods(), VarianceFilter{SectorCode: "SEC-03"}, testNow)
	assert.Len(t, rows, 1)
	assert.Equal(t, "EST-B", rows[0].LocationCode)
}

func TestReconcileIsInputOrderIndependent(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 10},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P2", Quantity: 5},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-002", PeriodCode: "2025-P1", Quantity: 20},
		{LocationCode: "EST-B", DivisionCode: "DIV-002", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 7},
	}
	history := []models.IssueRecord{
		{LocationCode: "EST-A", ItemCode: "ITM-001", Quantity: 4, Timestamp: p1Start.AddDate(0, 0, 2)},
		{LocationCode: "EST-A", ItemCode: "ITM-001", Quantity: 3, Timestamp: p1Start.AddDate(0, 0, 20)},
		{LocationCode: "EST-A", ItemCode: "ITM-002", Quantity: 25, Timestamp: p1Start.AddDate(0, 0, 9)},
		{LocationCode: "EST-B", ItemCode: "ITM-001", Quantity: 7, Timestamp: p1Start.AddDate(0, 0, 12)},
	}

	rng := rand.New(rand.NewSource(7))
	shuffled := func() ([]models.ForecastRecord, []models.IssueRecord) {
		r := append([]models.ForecastRecord(nil), records...)
		h := append([]models.IssueRecord(nil), history...)
		rng.Shuffle(len(r), func(i, j int) { r[i], r[j] = r[j], r[i] })
		rng.Shuffle(len(h), func(i, j int) { h[i], h[j] = h[j], h[i] })
		return r, h
	}

	baseline := Reconcile(records, history, testPeriods(), VarianceFilter{}, testNow)

	for i := 0; i < 10; i++ {
		r, h := shuffled()
		assert.Equal(t, baseline, Reconcile(r, h, testPeriods(), VarianceFilter{}, testNow))
	}
}

func TestReconcileRowsAreDeterministicallyOrdered(t *testing.T) {
	records := []models.ForecastRecord{
		{LocationCode: "EST-B", DivisionCode: "DIV-001", ItemCode: "ITM-002", PeriodCode: "2025-P2", Quantity: 1},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P2", Quantity: 1},
		{LocationCode: "EST-A", DivisionCode: "DIV-001", ItemCode: "ITM-001", PeriodCode: "2025-P1", Quantity: 1},
	}

	rows := Reconcile(records, nil, testPeriods(), VarianceFilter{}, testNow)

	assert.Equal(t, "2025-P1", rows[0].PeriodCode)
	assert.Equal(t, "2025-P2", rows[1].PeriodCode)
	assert.Equal(t, "EST-A", rows[1].LocationCode)
	assert.Equal(t, "EST-B", rows[2].LocationCode)
}

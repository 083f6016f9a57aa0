package report_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcherng/ledgerkit/internal/category"
	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/report"
)

var testRecords = []ledger.CategoryRecord{
	{ID: "food-id", Name: "食"},
	{ID: "clothing-id", Name: "衣"},
	{ID: "transport-id", Name: "行"},
}

func expense(date string, amount float64, items ...ledger.LineItem) ledger.Transaction {
	return ledger.Transaction{
		ID:        uuid.New(),
		Type:      ledger.TypeExpense,
		Amount:    amount,
		Date:      date,
		LineItems: items,
	}
}

func statFor(t *testing.T, stats []report.CategoryStat, c category.Category) report.CategoryStat {
	t.Helper()

	for _, s := range stats {
		if s.Category == c {
			return s
		}
	}

	t.Fatalf("no stat for %v", c)

	return report.CategoryStat{}
}

func TestBuild_SingleCategory(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-05", 100, ledger.LineItem{Name: "Lunch", Amount: 100, CategoryID: "food-id"}),
	}

	r := report.Build(txs, nil, testRecords, ledger.TypeExpense)

	assert.Equal(t, 100.0, r.Total)
	require.Len(t, r.CategoryStats, len(category.All))

	food := statFor(t, r.CategoryStats, category.Food)
	assert.Equal(t, 100.0, food.Amount)
	assert.Equal(t, 1.0, food.Proportion)

	for _, s := range r.CategoryStats {
		if s.Category != category.Food {
			assert.Zero(t, s.Amount)
			assert.Zero(t, s.Proportion)
		}
	}

	require.Len(t, r.ChartSegments, 1)
	assert.Equal(t, 1.0, r.ChartSegments[0].Proportion)
	assert.Equal(t, category.Food.Color(), r.ChartSegments[0].ColorKey)
}

func TestBuild_NoLineItemsGoesToOther(t *testing.T) {
	txs := []ledger.Transaction{expense("2025-03-05", 42)}

	r := report.Build(txs, nil, testRecords, ledger.TypeExpense)

	other := statFor(t, r.CategoryStats, category.Other)
	assert.Equal(t, 42.0, other.Amount)
	assert.Equal(t, 1.0, other.Proportion)
}

func TestBuild_FiltersByType(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-05", 100, ledger.LineItem{Amount: 100, CategoryID: "food-id"}),
		{Type: ledger.TypeIncome, Amount: 5000, Date: "2025-03-01"},
	}

	r := report.Build(txs, nil, testRecords, ledger.TypeExpense)
	assert.Equal(t, 100.0, r.Total)

	income := report.Build(txs, nil, testRecords, ledger.TypeIncome)
	assert.Equal(t, 5000.0, income.Total)
}

func TestBuild_SortedByAmountDescending(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-05", 260,
			ledger.LineItem{Amount: 50, CategoryID: "food-id"},
			ledger.LineItem{Amount: 200, CategoryID: "clothing-id"},
			ledger.LineItem{Amount: 10, CategoryID: "transport-id"},
		),
	}

	r := report.Build(txs, nil, testRecords, ledger.TypeExpense)

	assert.Equal(t, category.Clothing, r.CategoryStats[0].Category)
	assert.Equal(t, category.Food, r.CategoryStats[1].Category)
	assert.Equal(t, category.Transport, r.CategoryStats[2].Category)

	// Segment order mirrors stat order.
	require.Len(t, r.ChartSegments, 3)
	assert.Equal(t, category.Clothing.Color(), r.ChartSegments[0].ColorKey)
}

func TestBuild_ProportionInvariants(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-01", 33.33, ledger.LineItem{Amount: 33.33, CategoryID: "food-id"}),
		expense("2025-03-02", 66.67, ledger.LineItem{Amount: 66.67, CategoryID: "clothing-id"}),
		expense("2025-03-03", 10),
	}

	r := report.Build(txs, nil, testRecords, ledger.TypeExpense)

	var sum float64
	for _, s := range r.CategoryStats {
		assert.GreaterOrEqual(t, s.Proportion, 0.0)
		assert.LessOrEqual(t, s.Proportion, 1.0)
		sum += s.Proportion
	}

	assert.LessOrEqual(t, sum, 1.0+1e-9)
}

func TestBuild_EmptyMonth(t *testing.T) {
	r := report.Build(nil, nil, testRecords, ledger.TypeExpense)

	assert.Zero(t, r.Total)
	assert.Equal(t, "0%", r.Change)
	assert.Empty(t, r.ChartSegments)
	require.Len(t, r.CategoryStats, len(category.All))

	for _, s := range r.CategoryStats {
		assert.Zero(t, s.Proportion)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-05", 100, ledger.LineItem{Amount: 60, CategoryID: "food-id"}, ledger.LineItem{Amount: 40, CategoryID: "clothing-id"}),
		expense("2025-03-06", 25),
	}
	prev := []ledger.Transaction{expense("2025-02-10", 50, ledger.LineItem{Amount: 50, CategoryID: "food-id"})}

	first := report.Build(txs, prev, testRecords, ledger.TypeExpense)
	second := report.Build(txs, prev, testRecords, ledger.TypeExpense)

	assert.Equal(t, first, second)
}

func TestChangeLabel(t *testing.T) {
	type testCase struct {
		name     string
		current  float64
		previous float64
		want     string
	}

	tests := []testCase{
		{name: "ZeroBase", current: 500, previous: 0, want: "0%"},
		{name: "Increase", current: 112, previous: 100, want: "+12%"},
		{name: "Decrease", current: 80, previous: 100, want: "-20%"},
		{name: "Flat", current: 100, previous: 100, want: "+0%"},
		{name: "BothZero", current: 0, previous: 0, want: "0%"},
		{name: "DropToZero", current: 0, previous: 200, want: "-100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.ChangeLabel(tt.current, tt.previous))
		})
	}
}

func TestBuild_PerCategoryChange(t *testing.T) {
	cur := []ledger.Transaction{
		expense("2025-03-05", 150, ledger.LineItem{Amount: 150, CategoryID: "food-id"}),
	}
	prev := []ledger.Transaction{
		expense("2025-02-05", 100, ledger.LineItem{Amount: 100, CategoryID: "food-id"}),
	}

	r := report.Build(cur, prev, testRecords, ledger.TypeExpense)

	assert.Equal(t, "+50%", statFor(t, r.CategoryStats, category.Food).Change)
	assert.Equal(t, "0%", statFor(t, r.CategoryStats, category.Clothing).Change)
	assert.Equal(t, "+50%", r.Change)
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$0", report.Currency(0))
	assert.Equal(t, "$1,240", report.Currency(1240))
	assert.Equal(t, "$1,235", report.Currency(1234.56))
	assert.Equal(t, "$-500", report.Currency(-500))
}

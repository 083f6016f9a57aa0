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

func groupFor(t *testing.T, groups []report.CategoryGroup, c category.Category) report.CategoryGroup {
	t.Helper()

	for _, g := range groups {
		if g.Category == c {
			return g
		}
	}

	t.Fatalf("no group for %v", c)

	return report.CategoryGroup{}
}

func TestBuildTimeline_GroupsByDateThenCategory(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-05", 130,
			ledger.LineItem{Name: "Lunch", Amount: 30, CategoryID: "food-id"},
			ledger.LineItem{Name: "Shirt", Amount: 100, CategoryID: "clothing-id"},
		),
		expense("2025-03-04", 20, ledger.LineItem{Name: "Bus", Amount: 20, CategoryID: "transport-id"}),
	}

	days := report.BuildTimeline(txs, testRecords, nil)
	require.Len(t, days, 2)

	// Most recent first.
	assert.Equal(t, "2025/03/05", days[0].DisplayDate)
	assert.Equal(t, "2025/03/04", days[1].DisplayDate)

	// Two line items with distinct categories become two groups on the date.
	require.Len(t, days[0].Groups, 2)
	assert.Equal(t, category.Food, days[0].Groups[0].Category)
	assert.Equal(t, category.Clothing, days[0].Groups[1].Category)

	assert.Equal(t, 130.0, days[0].DailyTotal)
	assert.Equal(t, 20.0, days[1].DailyTotal)
}

func TestBuildTimeline_MergesSameCategoryAcrossReceipts(t *testing.T) {
	a := expense("2025-03-05", 30, ledger.LineItem{Name: "Lunch", Amount: 30, CategoryID: "food-id"})
	a.ReceiptURL = "https://r/1.jpg"

	b := expense("2025-03-05", 15, ledger.LineItem{Name: "Coffee", Amount: 15, CategoryID: "food-id"})
	b.ReceiptURL = "https://r/2.jpg"

	days := report.BuildTimeline([]ledger.Transaction{a, b}, testRecords, nil)
	require.Len(t, days, 1)
	require.Len(t, days[0].Groups, 1)

	g := days[0].Groups[0]
	assert.Equal(t, category.Food, g.Category)
	assert.Equal(t, 45.0, g.Total)
	assert.Len(t, g.Items, 2)
	assert.Equal(t, []string{"https://r/1.jpg", "https://r/2.jpg"}, g.ReceiptURLs)
}

func TestBuildTimeline_ReceiptURLDedup(t *testing.T) {
	a := expense("2025-03-05", 30, ledger.LineItem{Name: "Lunch", Amount: 30, CategoryID: "food-id"})
	a.ReceiptURL = "https://r/1.jpg"

	b := expense("2025-03-05", 15, ledger.LineItem{Name: "Coffee", Amount: 15, CategoryID: "food-id"})
	b.ReceiptURL = "https://r/1.jpg"

	c := expense("2025-03-05", 5, ledger.LineItem{Name: "Tea", Amount: 5, CategoryID: "food-id"})
	c.ReceiptURL = "   "

	days := report.BuildTimeline([]ledger.Transaction{a, b, c}, testRecords, nil)

	assert.Equal(t, []string{"https://r/1.jpg"}, days[0].Groups[0].ReceiptURLs)
}

func TestBuildTimeline_NoLineItemsBecomesOther(t *testing.T) {
	tx := ledger.Transaction{
		ID:     uuid.New(),
		Type:   ledger.TypeExpense,
		Amount: 42,
		Note:   "Street food",
		Date:   "2025-03-05",
	}

	days := report.BuildTimeline([]ledger.Transaction{tx}, testRecords, nil)
	require.Len(t, days, 1)

	g := groupFor(t, days[0].Groups, category.Other)
	require.Len(t, g.Items, 1)
	assert.Equal(t, "Street food", g.Items[0].Name)
	assert.Equal(t, 42.0, g.Items[0].Amount)
	assert.Equal(t, 42.0, g.Total)
}

func TestBuildTimeline_UnparseableDateDropped(t *testing.T) {
	txs := []ledger.Transaction{
		expense("not a date", 100, ledger.LineItem{Amount: 100, CategoryID: "food-id"}),
		expense("2025-03-05", 10, ledger.LineItem{Amount: 10, CategoryID: "food-id"}),
	}

	days := report.BuildTimeline(txs, testRecords, nil)

	require.Len(t, days, 1)
	assert.Equal(t, 10.0, days[0].DailyTotal)
}

func TestBuildTimeline_PaymentMethodLabels(t *testing.T) {
	card := ledger.CreditCard{ID: uuid.New(), Name: "Visa", BillingDay: 10}

	onCard := expense("2025-03-05", 30, ledger.LineItem{Name: "Lunch", Amount: 30, CategoryID: "food-id"})
	onCard.CreditCardID = card.ID.String()

	cash := expense("2025-03-05", 100, ledger.LineItem{Name: "Shirt", Amount: 100, CategoryID: "clothing-id"})

	ghost := expense("2025-03-05", 20, ledger.LineItem{Name: "Bus", Amount: 20, CategoryID: "transport-id"})
	ghost.CreditCardID = uuid.NewString()

	days := report.BuildTimeline([]ledger.Transaction{onCard, cash, ghost}, testRecords, []ledger.CreditCard{card})
	require.Len(t, days, 1)

	assert.Equal(t, "Visa", groupFor(t, days[0].Groups, category.Food).PaymentMethod)
	assert.Equal(t, report.PaymentCash, groupFor(t, days[0].Groups, category.Clothing).PaymentMethod)
	assert.Equal(t, report.PaymentCard, groupFor(t, days[0].Groups, category.Transport).PaymentMethod)
}

func TestBuildTimeline_MixedPaymentMethodsInGroup(t *testing.T) {
	card := ledger.CreditCard{ID: uuid.New(), Name: "Visa", BillingDay: 10}

	onCard := expense("2025-03-05", 30, ledger.LineItem{Name: "Lunch", Amount: 30, CategoryID: "food-id"})
	onCard.CreditCardID = card.ID.String()

	cash := expense("2025-03-05", 15, ledger.LineItem{Name: "Coffee", Amount: 15, CategoryID: "food-id"})

	days := report.BuildTimeline([]ledger.Transaction{onCard, cash}, testRecords, []ledger.CreditCard{card})

	assert.Equal(t, report.PaymentMultiple, days[0].Groups[0].PaymentMethod)
}

func TestBuildTimeline_PayerLabels(t *testing.T) {
	type testCase struct {
		name   string
		payers []string
		want   string
	}

	tests := []testCase{
		{name: "NoPayers", payers: []string{"", ""}, want: ""},
		{name: "SinglePayer", payers: []string{"Mei", "Mei"}, want: "Mei"},
		{name: "WhitespaceVariants", payers: []string{"Mei", " Mei "}, want: "Mei"},
		{name: "MultiplePayers", payers: []string{"Mei", "Jun"}, want: report.PayerMultiple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]ledger.LineItem, len(tt.payers))
			for i, p := range tt.payers {
				items[i] = ledger.LineItem{Name: "x", Amount: 10, CategoryID: "food-id", PayerName: p}
			}

			days := report.BuildTimeline([]ledger.Transaction{expense("2025-03-05", 20, items...)}, testRecords, nil)

			require.Len(t, days, 1)
			assert.Equal(t, tt.want, days[0].Groups[0].PayerName)
		})
	}
}

func TestBuildTimeline_SortWithinDate(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-05", 300,
			ledger.LineItem{Name: "Rent share", Amount: 250, CategoryID: "transport-id"},
			ledger.LineItem{Name: "Lunch", Amount: 50, CategoryID: "food-id"},
		),
	}

	days := report.BuildTimeline(txs, testRecords, nil)

	// Canonical category order wins over amount.
	require.Len(t, days[0].Groups, 2)
	assert.Equal(t, category.Food, days[0].Groups[0].Category)
	assert.Equal(t, category.Transport, days[0].Groups[1].Category)
}

func TestBuildTimeline_Idempotent(t *testing.T) {
	txs := []ledger.Transaction{
		expense("2025-03-05", 130,
			ledger.LineItem{Name: "Lunch", Amount: 30, CategoryID: "food-id", PayerName: "Mei"},
			ledger.LineItem{Name: "Shirt", Amount: 100, CategoryID: "clothing-id"},
		),
		expense("2025-03-04", 42),
	}

	first := report.BuildTimeline(txs, testRecords, nil)
	second := report.BuildTimeline(txs, testRecords, nil)

	assert.Equal(t, first, second)
}

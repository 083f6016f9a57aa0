package report

import (
	"strings"
	"time"

	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/period"
)

// BillingTotals builds the payment-method breakdown for the selected month:
// one row per configured card summed over its billing cycle, then a cash row
// over the natural month for transactions with no card reference. txs is the
// union of the current and previous months' expenses; a cycle that starts
// before the previous month's first day will undercount, which mirrors the
// windows the caller fetches. Rows with unparseable dates cannot be matched
// to a cycle and are skipped here (they still count in flat category totals).
func BillingTotals(cards []ledger.CreditCard, txs []ledger.Transaction, year int, month time.Month) []PaymentMethodStat {
	stats := make([]PaymentMethodStat, 0, len(cards)+1)

	for _, card := range cards {
		cycle := period.BillingCycle(year, month, card.BillingDay)

		var total float64
		for _, tx := range txs {
			if tx.Type != ledger.TypeExpense || !tx.UsesCard(card.ID) {
				continue
			}

			t, err := period.Parse(tx.Date)
			if err != nil {
				continue
			}

			if cycle.Contains(t) {
				total += tx.Amount
			}
		}

		stats = append(stats, PaymentMethodStat{
			Kind:   KindCard,
			Name:   card.Name,
			Period: cycle.Label(),
			Amount: total,
		})
	}

	window := period.MonthWindow(year, month)

	var cash float64
	for _, tx := range txs {
		if tx.Type != ledger.TypeExpense || strings.TrimSpace(tx.CreditCardID) != "" {
			continue
		}

		t, err := period.Parse(tx.Date)
		if err != nil {
			continue
		}

		if !t.Before(window.Start) && t.Before(window.End) {
			cash += tx.Amount
		}
	}

	// The month window's end is exclusive; the label shows the last day.
	label := period.Window{Start: window.Start, End: window.End.AddDate(0, 0, -1)}.Label()

	stats = append(stats, PaymentMethodStat{
		Kind:   KindCash,
		Name:   "Cash",
		Period: label,
		Amount: cash,
	})

	return stats
}

package report

import (
	"fmt"
	"sort"

	"github.com/kcherng/ledgerkit/internal/category"
	"github.com/kcherng/ledgerkit/internal/ledger"
)

// Build aggregates one month of transactions into a Report. previous feeds
// the month-over-month change labels and may be empty. Transactions of the
// other type are ignored; a transaction without line items counts in full
// under Other, otherwise each line item is resolved and accumulated
// individually. Every canonical category appears in CategoryStats, including
// zero-amount ones, sorted by descending amount.
func Build(current, previous []ledger.Transaction, records []ledger.CategoryRecord, typ ledger.Type) Report {
	sums := categorySums(current, records, typ)
	prevSums := categorySums(previous, records, typ)

	var total, prevTotal float64
	for _, c := range category.All {
		total += sums[c]
		prevTotal += prevSums[c]
	}

	// Clamp so an empty month yields zero proportions instead of NaN.
	denom := total
	if denom < 1 {
		denom = 1
	}

	stats := make([]CategoryStat, 0, len(category.All))
	for _, c := range category.All {
		stats = append(stats, CategoryStat{
			Category:   c,
			Amount:     sums[c],
			Proportion: sums[c] / denom,
			Change:     ChangeLabel(sums[c], prevSums[c]),
		})
	}

	// Stable so equal amounts keep canonical category order.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount > stats[j].Amount
	})

	var segments []ChartSegment
	for _, s := range stats {
		if s.Amount > 0 {
			segments = append(segments, ChartSegment{
				Proportion: s.Proportion,
				ColorKey:   s.Category.Color(),
			})
		}
	}

	return Report{
		Type:          typ,
		Total:         total,
		Change:        ChangeLabel(total, prevTotal),
		CategoryStats: stats,
		ChartSegments: segments,
	}
}

func categorySums(txs []ledger.Transaction, records []ledger.CategoryRecord, typ ledger.Type) map[category.Category]float64 {
	sums := make(map[category.Category]float64, len(category.All))

	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}

		if len(tx.LineItems) == 0 {
			sums[category.Other] += tx.Amount
			continue
		}

		for _, item := range tx.LineItems {
			sums[category.Resolve(item.CategoryID, records)] += item.Amount
		}
	}

	return sums
}

// ChangeLabel renders the percentage change from previous to current as a
// sign-prefixed whole percent. A zero or negative previous base reports "0%":
// there is no meaningful percentage change from nothing, and the product
// shows neutrality over an error or an infinity.
func ChangeLabel(current, previous float64) string {
	if previous <= 0 {
		return "0%"
	}

	change := (current - previous) / previous * 100

	sign := ""
	if change >= 0 {
		sign = "+"
	}

	return fmt.Sprintf("%s%d%%", sign, int(change))
}

// Package report turns raw transaction sets into view-ready aggregates:
// category totals and proportions, chart segments, month-over-month change,
// billing-cycle statement totals, and the grouped timeline. Everything here
// is a pure projection over in-memory data (no I/O, no shared state) and is
// recomputed on every query.
package report

import (
	"github.com/kcherng/ledgerkit/internal/category"
	"github.com/kcherng/ledgerkit/internal/ledger"
)

// CategoryStat is the per-category slice of a report. Proportion is
// Amount / total for the report type, in [0,1]. Change compares against the
// previous month ("+12%", "-5%", "0%" when there is no previous base).
type CategoryStat struct {
	Category   category.Category `json:"category"`
	Amount     float64           `json:"amount"`
	Proportion float64           `json:"proportion"`
	Change     string            `json:"change"`
}

// ChartSegment is one donut-chart arc. Segments appear in the same order as
// the sorted stats so the largest categories anchor the layout; zero-amount
// categories are omitted.
type ChartSegment struct {
	Proportion float64 `json:"proportion"`
	ColorKey   string  `json:"color_key"`
}

// Report is the categorized summary for one month and one transaction type.
type Report struct {
	Type          ledger.Type    `json:"type"`
	Total         float64        `json:"total"`
	Change        string         `json:"change"`
	CategoryStats []CategoryStat `json:"category_stats"`
	ChartSegments []ChartSegment `json:"chart_segments"`
}

// PaymentMethodStat is one statement row of the billing report: a credit
// card's billing-cycle total or the cash total for the natural month.
type PaymentMethodStat struct {
	Kind   string  `json:"kind"` // "cash" or "card"
	Name   string  `json:"name"`
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

const (
	KindCash = "cash"
	KindCard = "card"
)

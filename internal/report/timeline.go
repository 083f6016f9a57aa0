package report

import (
	"sort"
	"strings"

	"github.com/kcherng/ledgerkit/internal/category"
	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/period"
)

// Labels for groups whose contributing records disagree.
const (
	PaymentCash     = "Cash"
	PaymentCard     = "Credit card"
	PaymentMultiple = "Multiple"
	PayerMultiple   = "Multiple payers"
)

// TimelineItem is one displayed entry inside a category group.
type TimelineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CategoryGroup collapses every line item of one category on one date:
// aggregated subtotal, the receipts behind it, and resolved payment-method
// and payer labels.
type CategoryGroup struct {
	ID            string            `json:"id"`
	Category      category.Category `json:"category"`
	Items         []TimelineItem    `json:"items"`
	Total         float64           `json:"total"`
	ReceiptURLs   []string          `json:"receipt_urls,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	PayerName     string            `json:"payer_name,omitempty"`
}

// DateGroup is one day of the timeline. DailyTotal covers every transaction
// on the date regardless of category or type.
type DateGroup struct {
	DisplayDate string          `json:"display_date"`
	DailyTotal  float64         `json:"daily_total"`
	Groups      []CategoryGroup `json:"category_groups"`
}

// gathers per-group state before labels are resolved
type groupAccum struct {
	group   CategoryGroup
	methods map[string]struct{}
	payers  map[string]struct{}
	urls    map[string]struct{}
}

// BuildTimeline projects transactions into the chronological view: grouped
// by display date (most recent first), then by resolved category within each
// date. Transactions whose dates cannot be parsed are dropped from this view
// only; flat category totals elsewhere still include them.
func BuildTimeline(txs []ledger.Transaction, records []ledger.CategoryRecord, cards []ledger.CreditCard) []DateGroup {
	days := make(map[string]*DateGroup)
	accums := make(map[string]map[category.Category]*groupAccum)

	for _, tx := range txs {
		display := period.DisplayDate(tx.Date)
		if display == "" {
			continue
		}

		day, ok := days[display]
		if !ok {
			day = &DateGroup{DisplayDate: display}
			days[display] = day
			accums[display] = make(map[category.Category]*groupAccum)
		}

		day.DailyTotal += tx.Amount

		method := paymentLabel(tx, cards)

		for cat, items := range explode(tx, records) {
			acc, ok := accums[display][cat]
			if !ok {
				acc = &groupAccum{
					group: CategoryGroup{
						ID:       display + ":" + cat.Key(),
						Category: cat,
					},
					methods: make(map[string]struct{}),
					payers:  make(map[string]struct{}),
					urls:    make(map[string]struct{}),
				}
				accums[display][cat] = acc
			}

			for _, item := range items {
				acc.group.Items = append(acc.group.Items, TimelineItem{Name: item.Name, Amount: item.Amount})
				acc.group.Total += item.Amount

				if payer := strings.TrimSpace(item.PayerName); payer != "" {
					acc.payers[payer] = struct{}{}
				}
			}

			acc.methods[method] = struct{}{}

			if url := strings.TrimSpace(tx.ReceiptURL); url != "" {
				if _, seen := acc.urls[url]; !seen {
					acc.urls[url] = struct{}{}
					acc.group.ReceiptURLs = append(acc.group.ReceiptURLs, url)
				}
			}
		}
	}

	out := make([]DateGroup, 0, len(days))
	for display, day := range days {
		for _, acc := range accums[display] {
			acc.group.PaymentMethod = singleOr(acc.methods, PaymentMultiple)
			acc.group.PayerName = singleOr(acc.payers, PayerMultiple)
			day.Groups = append(day.Groups, acc.group)
		}

		sort.Slice(day.Groups, func(i, j int) bool {
			a, b := day.Groups[i], day.Groups[j]
			if a.Category.Order() != b.Category.Order() {
				return a.Category.Order() < b.Category.Order()
			}

			return a.Total > b.Total
		})

		out = append(out, *day)
	}

	// YYYY/MM/DD sorts lexicographically, so string order is date order.
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayDate > out[j].DisplayDate
	})

	return out
}

// explode buckets a transaction's line items by resolved category. A
// transaction without line items becomes one synthetic Other item carrying
// the full amount, named from the transaction's best available title.
func explode(tx ledger.Transaction, records []ledger.CategoryRecord) map[category.Category][]ledger.LineItem {
	if len(tx.LineItems) == 0 {
		return map[category.Category][]ledger.LineItem{
			category.Other: {{Name: tx.Title(), Amount: tx.Amount}},
		}
	}

	buckets := make(map[category.Category][]ledger.LineItem)
	for _, item := range tx.LineItems {
		cat := category.Resolve(item.CategoryID, records)
		buckets[cat] = append(buckets[cat], item)
	}

	return buckets
}

func paymentLabel(tx ledger.Transaction, cards []ledger.CreditCard) string {
	if strings.TrimSpace(tx.CreditCardID) == "" {
		return PaymentCash
	}

	for _, card := range cards {
		if tx.UsesCard(card.ID) {
			return card.Name
		}
	}

	// Card reference points at a deleted or foreign card.
	return PaymentCard
}

// singleOr returns the sole element of set, the fallback when there are
// several, or "" when empty.
func singleOr(set map[string]struct{}, fallback string) string {
	switch len(set) {
	case 0:
		return ""
	case 1:
		for v := range set {
			return v
		}
	}

	return fallback
}

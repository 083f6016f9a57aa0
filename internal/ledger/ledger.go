package ledger

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

var ErrNotFound = errors.New("not found")

// Transaction is a single capture event: one receipt, one voice entry, or one
// manual entry. Amount is the authoritative total; LineItems may be empty for
// an undivided transaction. Date is kept as the raw string the data service
// returned; upstream rows carry ISO-8601 with or without fractional seconds,
// or plain YYYY-MM-DD.
type Transaction struct {
	ID           uuid.UUID  `json:"id"`
	Type         Type       `json:"type"`
	Amount       float64    `json:"amount"`
	Note         string     `json:"note,omitempty"`
	Date         string     `json:"transaction_date"`
	ReceiptURL   string     `json:"receipt_url,omitempty"`
	CreditCardID string     `json:"credit_card_id,omitempty"`
	LineItems    []LineItem `json:"line_items,omitempty"`
}

// LineItem is a single priced entry within a transaction. CategoryID and the
// payer name are loosely typed strings: category ids have drifted across
// migrations and payer names are captured by value so later renames do not
// rewrite history.
type LineItem struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	CategoryID    string    `json:"category_id,omitempty"`
	PayerName     string    `json:"payer_name,omitempty"`
}

// CategoryRecord is mutable reference data from the data service. Names do
// not always match a canonical category label exactly; see the resolver.
type CategoryRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// CreditCard defines a recurring monthly billing cycle bounded by BillingDay.
type CreditCard struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"card_name"`
	BillingDay int       `json:"billing_day"`
}

type FamilyMember struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
}

// Profile carries the per-user monthly spending limit used for the remaining
// budget card.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	MonthlyLimit float64   `json:"monthly_limit"`
}

// DefaultMember returns the member marked default. The mutation API is meant
// to keep at most one default, but read-side data may carry zero or several;
// the first wins, and the first member is the fallback.
func DefaultMember(members []FamilyMember) (FamilyMember, bool) {
	for _, m := range members {
		if m.IsDefault {
			return m, true
		}
	}

	if len(members) > 0 {
		return members[0], true
	}

	return FamilyMember{}, false
}

// Title returns the best available display title for a transaction: first
// line item name (with a trailing ellipsis marker when more follow), then the
// note, then a generic label.
func (t Transaction) Title() string {
	if len(t.LineItems) > 0 && strings.TrimSpace(t.LineItems[0].Name) != "" {
		if len(t.LineItems) > 1 {
			return t.LineItems[0].Name + " …"
		}

		return t.LineItems[0].Name
	}

	if strings.TrimSpace(t.Note) != "" {
		return t.Note
	}

	return "Transaction"
}

// UsesCard reports whether the transaction was charged to the given card.
// Card references are loosely typed strings upstream, so matching tolerates
// case and whitespace variance.
func (t Transaction) UsesCard(cardID uuid.UUID) bool {
	return strings.EqualFold(strings.TrimSpace(t.CreditCardID), cardID.String())
}

// Package split computes per-payer shares for captured line items.
package split

import "github.com/google/uuid"

// SplitSuffix marks a line item record that is one share of a divided item.
const SplitSuffix = " (split)"

// Item is a single priced entry as captured, before payer division.
type Item struct {
	Name       string
	Amount     float64
	CategoryID string
}

// Payer identifies a family member a share is assigned to. Name is the
// display name at split time; shares copy it by value so renaming a member
// later does not rewrite history.
type Payer struct {
	ID   uuid.UUID
	Name string
}

// Share is one derived record to persist and aggregate.
type Share struct {
	Name       string
	Amount     float64
	CategoryID string
	PayerID    uuid.UUID
	PayerName  string
}

// Split divides an item's amount evenly across its payers. Each share is
// amount / max(1, len(payers)), so the shares always sum back to the original
// amount and zero payers cannot divide by zero: the item becomes a single
// unassigned share. Fractional cents are carried, not redistributed.
func Split(item Item, payers []Payer) []Share {
	n := len(payers)
	if n == 0 {
		return []Share{{
			Name:       item.Name,
			Amount:     item.Amount,
			CategoryID: item.CategoryID,
		}}
	}

	name := item.Name
	if n > 1 {
		name += SplitSuffix
	}

	amount := item.Amount / float64(n)

	shares := make([]Share, n)
	for i, p := range payers {
		shares[i] = Share{
			Name:       name,
			Amount:     amount,
			CategoryID: item.CategoryID,
			PayerID:    p.ID,
			PayerName:  p.Name,
		}
	}

	return shares
}

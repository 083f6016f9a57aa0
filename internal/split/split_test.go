package split_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcherng/ledgerkit/internal/split"
)

func TestSplit_SinglePayer(t *testing.T) {
	payer := split.Payer{ID: uuid.New(), Name: "Mei"}

	shares := split.Split(split.Item{Name: "Groceries", Amount: 120, CategoryID: "cat-food"}, []split.Payer{payer})

	require.Len(t, shares, 1)
	assert.Equal(t, "Groceries", shares[0].Name)
	assert.Equal(t, 120.0, shares[0].Amount)
	assert.Equal(t, "cat-food", shares[0].CategoryID)
	assert.Equal(t, payer.ID, shares[0].PayerID)
	assert.Equal(t, "Mei", shares[0].PayerName)
}

func TestSplit_MultiplePayers(t *testing.T) {
	payers := []split.Payer{
		{ID: uuid.New(), Name: "Mei"},
		{ID: uuid.New(), Name: "Jun"},
		{ID: uuid.New(), Name: "Ting"},
	}

	shares := split.Split(split.Item{Name: "Dinner", Amount: 100}, payers)

	require.Len(t, shares, 3)

	var sum float64
	for i, s := range shares {
		assert.Equal(t, "Dinner"+split.SplitSuffix, s.Name)
		assert.Equal(t, payers[i].ID, s.PayerID)
		assert.Equal(t, payers[i].Name, s.PayerName)
		sum += s.Amount
	}

	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestSplit_ZeroPayers(t *testing.T) {
	shares := split.Split(split.Item{Name: "Parking", Amount: 42}, nil)

	require.Len(t, shares, 1)
	assert.Equal(t, "Parking", shares[0].Name)
	assert.Equal(t, 42.0, shares[0].Amount)
	assert.Equal(t, uuid.Nil, shares[0].PayerID)
	assert.Empty(t, shares[0].PayerName)
}

// Shares sum back to the original amount regardless of payer count.
func TestSplit_SumInvariant(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 99.99, 1234.56, 1e6}

	for _, amount := range amounts {
		for n := 0; n <= 7; n++ {
			payers := make([]split.Payer, n)
			for i := range payers {
				payers[i] = split.Payer{ID: uuid.New(), Name: "p"}
			}

			var sum float64
			for _, s := range split.Split(split.Item{Name: "x", Amount: amount}, payers) {
				sum += s.Amount
			}

			assert.InDelta(t, amount, sum, 1e-9, "amount=%v payers=%d", amount, n)
		}
	}
}

// Payer names are captured by value: mutating the payer afterwards must not
// affect already produced shares.
func TestSplit_NameCapturedByValue(t *testing.T) {
	payers := []split.Payer{{ID: uuid.New(), Name: "Before"}}

	shares := split.Split(split.Item{Name: "Taxi", Amount: 30}, payers)
	payers[0].Name = "After"

	assert.Equal(t, "Before", shares[0].PayerName)
}

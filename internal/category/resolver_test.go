package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kcherng/ledgerkit/internal/category"
	"github.com/kcherng/ledgerkit/internal/ledger"
)

func TestResolve(t *testing.T) {
	records := []ledger.CategoryRecord{
		{ID: "cat-food", Name: "食"},
		{ID: "CAT-TRANSPORT", Name: "行"},
		{ID: "cat-legacy-other", Name: "其他"},
		{ID: "cat-misc", Name: "雜項"},
		{ID: "cat-padded", Name: " 衣 "},
		{ID: "cat-unknown", Name: "帳務調整"},
	}

	type testCase struct {
		name string
		id   string
		want category.Category
	}

	tests := []testCase{
		{name: "EmptyID", id: "", want: category.Other},
		{name: "WhitespaceID", id: "   ", want: category.Other},
		{name: "ExactRecordMatch", id: "cat-food", want: category.Food},
		{name: "CaseInsensitiveID", id: "cat-transport", want: category.Transport},
		{name: "PaddedID", id: "  cat-food  ", want: category.Food},
		{name: "LegacyOtherSpelling", id: "cat-legacy-other", want: category.Other},
		{name: "LegacyMiscSpelling", id: "cat-misc", want: category.Other},
		{name: "PaddedRecordName", id: "cat-padded", want: category.Clothing},
		{name: "RecordNameUnknown", id: "cat-unknown", want: category.Other},
		{name: "DirectLabel", id: "住", want: category.Housing},
		{name: "DirectKey", id: "recreation", want: category.Recreation},
		{name: "DirectKeyUppercase", id: "FOOD", want: category.Food},
		{name: "UnmatchedID", id: "no-such-id", want: category.Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, category.Resolve(tt.id, records))
		})
	}
}

func TestResolve_NilRecords(t *testing.T) {
	assert.Equal(t, category.Other, category.Resolve("cat-food", nil))
	assert.Equal(t, category.Food, category.Resolve("食", nil))
}

// Every input resolves to one of the seven categories.
func TestResolve_Closure(t *testing.T) {
	records := []ledger.CategoryRecord{
		{ID: "x", Name: "??"},
		{ID: "", Name: ""},
	}

	inputs := []string{"", "x", "garbage", "食", "FOOD", "\t其他\n", "123e4567"}
	for _, id := range inputs {
		got := category.Resolve(id, records)
		assert.Contains(t, category.All, got, "input %q", id)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	records := []ledger.CategoryRecord{{ID: "a", Name: "娛"}}

	first := category.Resolve("a", records)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, category.Resolve("a", records))
	}
	assert.Equal(t, category.Entertainment, first)
}

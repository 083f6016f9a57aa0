package category

import (
	"strings"

	"github.com/kcherng/ledgerkit/internal/ledger"
)

// Legacy spellings that historic category rows used for Other. Rows predating
// the label migration still carry them.
var otherSynonyms = map[string]struct{}{
	"其他": {},
	"雜項": {},
}

// strategy is one step of the resolution chain. It reports whether it
// produced an answer.
type strategy func(id string, records []ledger.CategoryRecord) (Category, bool)

// Resolution order is significant: first match wins, and the chain always
// terminates at Other.
var chain = []strategy{
	resolveEmpty,
	resolveByRecord,
	resolveDirect,
}

// Resolve maps a stored category id onto the closed category set. It is a
// pure function: deterministic for a given (id, records) pair, no side
// effects. Unmatchable input resolves to Other, never an error.
func Resolve(categoryID string, records []ledger.CategoryRecord) Category {
	for _, s := range chain {
		if c, ok := s(categoryID, records); ok {
			return c
		}
	}

	return Other
}

func resolveEmpty(id string, _ []ledger.CategoryRecord) (Category, bool) {
	if strings.TrimSpace(id) == "" {
		return Other, true
	}

	return Other, false
}

// resolveByRecord looks the id up in the reference data. Upstream ids are not
// normalized consistently between inserts, so the match is case- and
// whitespace-insensitive.
func resolveByRecord(id string, records []ledger.CategoryRecord) (Category, bool) {
	want := normalize(id)

	for _, r := range records {
		if normalize(r.ID) != want {
			continue
		}

		if c, ok := byLabel(r.Name); ok {
			return c, true
		}

		if _, ok := otherSynonyms[strings.TrimSpace(r.Name)]; ok {
			return Other, true
		}

		if c, ok := byLabel(strings.TrimSpace(r.Name)); ok {
			return c, true
		}

		return Other, false
	}

	return Other, false
}

// resolveDirect treats the id itself as a label or english key. Some legacy
// rows stored the display label where the id belongs.
func resolveDirect(id string, _ []ledger.CategoryRecord) (Category, bool) {
	if c, ok := byLabel(strings.TrimSpace(id)); ok {
		return c, true
	}

	want := normalize(id)
	for _, c := range All {
		if c.Key() == want {
			return c, true
		}
	}

	return Other, false
}

func byLabel(name string) (Category, bool) {
	for _, c := range All {
		if c.Label() == name {
			return c, true
		}
	}

	return Other, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

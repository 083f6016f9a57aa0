// Package category defines the closed set of ledger categories and the
// resolution chain that maps loosely typed upstream category ids onto it.
package category

// Category is one of the seven fixed ledger categories. The zero value is
// not valid; Other is the terminal fallback for anything unresolvable.
type Category int

const (
	Food Category = iota
	Clothing
	Housing
	Transport
	Entertainment
	Recreation
	Other
)

// All lists the categories in canonical display order.
var All = []Category{Food, Clothing, Housing, Transport, Entertainment, Recreation, Other}

var labels = map[Category]string{
	Food:          "食",
	Clothing:      "衣",
	Housing:       "住",
	Transport:     "行",
	Entertainment: "娛",
	Recreation:    "樂",
	Other:         "其它",
}

var keys = map[Category]string{
	Food:          "food",
	Clothing:      "clothing",
	Housing:       "housing",
	Transport:     "transport",
	Entertainment: "entertainment",
	Recreation:    "recreation",
	Other:         "other",
}

var icons = map[Category]string{
	Food:          "fork.knife",
	Clothing:      "tshirt.fill",
	Housing:       "house.fill",
	Transport:     "car.fill",
	Entertainment: "gamecontroller.fill",
	Recreation:    "music.note",
	Other:         "ellipsis.circle.fill",
}

var colors = map[Category]string{
	Food:          "FF9500",
	Clothing:      "007AFF",
	Housing:       "34C759",
	Transport:     "8E8E93",
	Entertainment: "AF52DE",
	Recreation:    "FF2D55",
	Other:         "C7C7CC",
}

// Label returns the canonical display label.
func (c Category) Label() string { return labels[c] }

// Key returns the stable english identifier.
func (c Category) Key() string { return keys[c] }

// Icon returns the display icon name.
func (c Category) Icon() string { return icons[c] }

// Color returns the display color as an RGB hex string without '#'.
func (c Category) Color() string { return colors[c] }

// Order returns the canonical ordering key used by the timeline.
func (c Category) Order() int { return int(c) }

func (c Category) String() string { return keys[c] }

package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency renders an amount as a grouped whole-dollar label ("$1,240").
// The dashboard shows whole amounts; fractional cents only exist inside
// split shares and never surface here.
func Currency(amount float64) string {
	return printer.Sprintf("$%d", int64(math.Round(amount)))
}

// Package period computes the calendar windows the reporting engine
// aggregates over: natural months and credit-card billing cycles.
package period

import (
	"errors"
	"fmt"
	"time"
)

// Window is a date range. End is exclusive for month windows and inclusive
// for billing cycles; each constructor documents which.
type Window struct {
	Start time.Time
	End   time.Time
}

var ErrUnparseable = errors.New("unparseable date")

// MonthWindow returns the natural calendar month [first day, first day of
// next month). End is exclusive.
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousMonthWindow is MonthWindow shifted back one month; its End equals
// the current month's Start.
func PreviousMonthWindow(year int, month time.Month) Window {
	cur := MonthWindow(year, month)

	return Window{Start: cur.Start.AddDate(0, -1, 0), End: cur.Start}
}

// BillingCycle returns the statement window for a card in the given month:
// end = the card's billing day, start = one day after the previous cycle's
// billing day. Both bounds are inclusive. A billing day past the end of a
// month clamps to that month's last valid day, so day 31 works on 30-day
// months and in February, and cycles crossing a year boundary stay correct.
func BillingCycle(year int, month time.Month, billingDay int) Window {
	end := clampedDate(year, month, billingDay)

	prevYear, prevMonth := year, month-1
	if prevMonth < time.January {
		prevYear, prevMonth = year-1, time.December
	}

	start := clampedDate(prevYear, prevMonth, billingDay).AddDate(0, 0, 1)

	return Window{Start: start, End: end}
}

// Contains reports whether t falls within the window, inclusive of both
// bounds. Used for billing cycles; month windows filter with half-open
// comparisons instead.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Label renders the window as "M/D - M/D" for statement rows.
func (w Window) Label() string {
	return fmt.Sprintf("%d/%d - %d/%d",
		int(w.Start.Month()), w.Start.Day(),
		int(w.End.Month()), w.End.Day())
}

func clampedDate(year int, month time.Month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Parse accepts the three date shapes the data service emits, tried in
// order: ISO-8601 with fractional seconds, ISO-8601 without, and a plain
// YYYY-MM-DD prefix. Anything else returns ErrUnparseable; callers exclude
// such rows from date-grouped views but keep them in flat totals.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	if len(s) >= 10 {
		if t, err := time.Parse(time.DateOnly, s[:10]); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
}

// DisplayDate renders a raw transaction date as YYYY/MM/DD, or "" when the
// date cannot be parsed.
func DisplayDate(s string) string {
	t, err := Parse(s)
	if err != nil {
		return ""
	}

	return t.Format("2006/01/02")
}

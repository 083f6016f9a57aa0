package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcherng/ledgerkit/internal/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthWindow(t *testing.T) {
	w := period.MonthWindow(2025, time.March)

	assert.Equal(t, date(2025, time.March, 1), w.Start)
	assert.Equal(t, date(2025, time.April, 1), w.End)
}

func TestMonthWindow_December(t *testing.T) {
	w := period.MonthWindow(2025, time.December)

	assert.Equal(t, date(2025, time.December, 1), w.Start)
	assert.Equal(t, date(2026, time.January, 1), w.End)
}

func TestPreviousMonthWindow(t *testing.T) {
	w := period.PreviousMonthWindow(2025, time.March)

	assert.Equal(t, date(2025, time.February, 1), w.Start)
	assert.Equal(t, date(2025, time.March, 1), w.End)
	assert.Equal(t, period.MonthWindow(2025, time.March).Start, w.End)
}

func TestPreviousMonthWindow_January(t *testing.T) {
	w := period.PreviousMonthWindow(2025, time.January)

	assert.Equal(t, date(2024, time.December, 1), w.Start)
	assert.Equal(t, date(2025, time.January, 1), w.End)
}

func TestBillingCycle(t *testing.T) {
	type testCase struct {
		name       string
		year       int
		month      time.Month
		billingDay int
		wantStart  time.Time
		wantEnd    time.Time
	}

	tests := []testCase{
		{
			name: "MidMonth", year: 2025, month: time.March, billingDay: 10,
			wantStart: date(2025, time.February, 11),
			wantEnd:   date(2025, time.March, 10),
		},
		{
			name: "ClampsToFebruaryEnd", year: 2025, month: time.February, billingDay: 31,
			wantStart: date(2025, time.February, 1),
			wantEnd:   date(2025, time.February, 28),
		},
		{
			name: "LeapFebruary", year: 2024, month: time.February, billingDay: 31,
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name: "ClampsOnThirtyDayMonth", year: 2025, month: time.April, billingDay: 31,
			wantStart: date(2025, time.April, 1),
			wantEnd:   date(2025, time.April, 30),
		},
		{
			name: "AcrossYearBoundary", year: 2025, month: time.January, billingDay: 15,
			wantStart: date(2024, time.December, 16),
			wantEnd:   date(2025, time.January, 15),
		},
		{
			name: "FirstOfMonth", year: 2025, month: time.March, billingDay: 1,
			wantStart: date(2025, time.February, 2),
			wantEnd:   date(2025, time.March, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := period.BillingCycle(tt.year, tt.month, tt.billingDay)

			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := period.BillingCycle(2025, time.March, 10)

	assert.True(t, w.Contains(date(2025, time.February, 11)))
	assert.True(t, w.Contains(date(2025, time.March, 10)))
	assert.True(t, w.Contains(date(2025, time.February, 20)))
	assert.False(t, w.Contains(date(2025, time.February, 10)))
	assert.False(t, w.Contains(date(2025, time.March, 11)))
}

func TestWindow_Label(t *testing.T) {
	w := period.BillingCycle(2025, time.March, 10)

	assert.Equal(t, "2/11 - 3/10", w.Label())
}

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}

	tests := []testCase{
		{
			name: "ISOFractionalSeconds",
			in:   "2025-03-05T14:30:00.123Z",
			want: time.Date(2025, time.March, 5, 14, 30, 0, 123000000, time.UTC),
		},
		{
			name: "ISONoFraction",
			in:   "2025-03-05T14:30:00Z",
			want: time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "PlainDate",
			in:   "2025-03-05",
			want: date(2025, time.March, 5),
		},
		{
			name: "DatePrefixWithJunk",
			in:   "2025-03-05 around noon",
			want: date(2025, time.March, 5),
		},
		{name: "Empty", in: "", wantErr: true},
		{name: "Garbage", in: "03/05/2025", wantErr: true},
		{name: "TooShort", in: "2025-03", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := period.Parse(tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, period.ErrUnparseable)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "2025/03/05", period.DisplayDate("2025-03-05T14:30:00Z"))
	assert.Equal(t, "2025/03/05", period.DisplayDate("2025-03-05"))
	assert.Equal(t, "", period.DisplayDate("not a date"))
}

package rdate

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestNewDateErrors(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
		err              string
	}{
		{2015, 13, 1, "invalid month: 13"},
		{2015, 0, 1, "invalid month: 0"},
		{2015, 2, 29, "invalid day (1-28): 29"},
		{2016, 2, 30, "invalid day (1-29): 30"},
		{2015, 6, 0, "invalid day (1-30): 0"},
		{1499, 12, 31, "invalid year (1500-2500): 1499"},
		{2501, 1, 1, "invalid year (1500-2500): 2501"},
	} {
		_, err := NewDate(tc.year, tc.month, tc.day)
		require.EqualError(t, err, tc.err)
		require.True(t, errors.Is(err, ErrInvalidValue))
		var ve *ValueError
		require.True(t, errors.As(err, &ve))
	}
	require.Panics(t, func() { MustDate(2015, 2, 29) })
}

func TestNewTimeErrors(t *testing.T) {
	for _, tc := range []struct {
		hour, minute, second int
		err                  string
	}{
		{24, 0, 0, "invalid hour: 24"},
		{-1, 0, 0, "invalid hour: -1"},
		{0, 60, 0, "invalid minute: 60"},
		{0, 0, 60, "invalid second: 60"},
	} {
		_, err := NewTime(tc.hour, tc.minute, tc.second)
		require.EqualError(t, err, tc.err)
		require.True(t, errors.Is(err, ErrInvalidValue))
	}
}

func TestTime(t *testing.T) {
	a, b := MustTime(10, 30, 0), MustTime(11, 0, 15)
	require.Equal(t, 1815, a.Diff(b))
	require.Equal(t, -1815, b.Diff(a))
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 0, a.Compare(MustTime(10, 30, 0)))
	require.Equal(t, -79200, MustTime(23, 0, 0).Diff(MustTime(1, 0, 0)))
	require.Equal(t, StartOfDay(), Time{})
	require.Equal(t, "00:00:00", Time{}.String())
	require.Equal(t, "00:00:00", StartOfDay().String())
	require.Equal(t, "23:59:59", EndOfDay().String())
	require.Equal(t, 86399, EndOfDay().Seconds())
	for _, secs := range []int{0, 1, 59, 60, 3599, 3600, 45296, 86399} {
		require.Equal(t, secs, timeFromSeconds(secs).Seconds())
	}
}

func TestDateProperties(t *testing.T) {
	d := MustDate(2015, 6, 6)
	require.Equal(t, Saturday, d.Weekday())
	require.True(t, d.IsWeekend())
	require.False(t, MustDate(2015, 6, 5).IsWeekend())
	require.False(t, d.IsLeap())
	require.True(t, MustDate(2012, 2, 6).IsLeap())
	require.True(t, MustDate(2000, 1, 1).IsLeap())
	require.False(t, MustDate(1900, 1, 1).IsLeap())
	require.Equal(t, 366, MustDate(2012, 2, 6).Length(PeriodYear))
	require.Equal(t, 365, MustDate(2013, 2, 6).Length(PeriodYear))

	// The weekend does not move with the first day of the week.
	withFirstDayOfWeek(t, Saturday)
	require.True(t, MustDate(2015, 6, 7).IsWeekend())
}

func TestDateOrdering(t *testing.T) {
	dates := []Date{
		MustDate(2014, 12, 31),
		MustDate(2015, 1, 1),
		MustDate(2015, 1, 2),
		MustDate(2015, 2, 1),
	}
	for i := range dates {
		for j := range dates {
			require.Equal(t, i < j, dates[i].Less(dates[j]), "%s < %s", dates[i], dates[j])
			require.Equal(t, i == j, dates[i] == dates[j])
		}
	}
	require.Equal(t, 0, dates[1].Compare(MustDate(2015, 1, 1)))
	require.Equal(t, 1, dates[3].Compare(dates[0]))
}

// sampleDates returns dates spread over the supported range, with month
// ends and leap days included.
func sampleDates() []Date {
	var ret []Date
	for year := MinYear; year <= MaxYear; year += 37 {
		for month := 1; month <= 12; month += 5 {
			ret = append(ret, MustDate(year, month, 1), MustDate(year, month, DaysInMonth(year, month)))
		}
	}
	return append(ret, MustDate(2012, 2, 29), MustDate(2000, 2, 29), MustDate(2015, 6, 15))
}

func TestMoveRoundTrip(t *testing.T) {
	for _, d := range sampleDates() {
		next, err := d.Next(1, PeriodDay)
		if err == nil {
			back, err := next.Prev(1, PeriodDay)
			require.NoError(t, err)
			require.Equal(t, d, back)
		}
		for _, p := range []Period{PeriodDay, PeriodWeek} {
			for _, n := range []int{-400, -1, 0, 3, 52} {
				moved, err := d.Move(n, p)
				if err != nil {
					require.True(t, errors.Is(err, ErrInvalidValue))
					continue
				}
				back, err := moved.Move(-n, p)
				require.NoError(t, err)
				require.Equal(t, d, back, "%s %d %s", d, n, p)
				require.Equal(t, n, d.Diff(moved, PeriodDay)/map[Period]int{PeriodDay: 1, PeriodWeek: 7}[p])
			}
		}
	}
}

func TestMonthClamping(t *testing.T) {
	// Clamping makes month moves non-invertible.
	d := MustDate(2015, 1, 31)
	next, err := d.Next(1, PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, MustDate(2015, 2, 28), next)
	back, err := next.Prev(1, PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, MustDate(2015, 1, 28), back)

	for _, d := range sampleDates() {
		for _, n := range []int{-25, -12, -1, 1, 11, 12, 13} {
			moved, err := d.Move(n, PeriodMonth)
			if err != nil {
				continue
			}
			require.Equal(t, n, d.Diff(moved, PeriodMonth))
			require.LessOrEqual(t, moved.Day(), d.Day())
		}
	}
}

func TestWeekDiff(t *testing.T) {
	require.Equal(t, 0, MustDate(2015, 6, 2).Diff(MustDate(2015, 6, 7), PeriodWeek))
	require.Equal(t, 1, MustDate(2015, 6, 2).Diff(MustDate(2015, 6, 8), PeriodWeek))

	// The same pair straddles a week boundary once Sunday starts the week.
	withFirstDayOfWeek(t, Sunday)
	require.Equal(t, 1, MustDate(2015, 6, 2).Diff(MustDate(2015, 6, 7), PeriodWeek))
	start, end, err := MustDate(2015, 6, 2).Envelope(PeriodWeek, MustDate(2015, 6, 2))
	require.NoError(t, err)
	require.Equal(t, MustDate(2015, 5, 31), start)
	require.Equal(t, MustDate(2015, 6, 6), end)
}

func TestFindDay(t *testing.T) {
	for _, tc := range []struct {
		year, month int
		wd          Weekday
		n           int
		want        Date
	}{
		{2015, 3, Sunday, 1, MustDate(2015, 3, 1)},
		{2015, 3, Sunday, 2, MustDate(2015, 3, 8)},
		{2015, 3, Tuesday, 5, MustDate(2015, 3, 31)},
	} {
		got, err := FindDay(tc.year, tc.month, tc.wd, tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
	for _, n := range []int{-1, 0, 6} {
		_, err := FindDay(2015, 3, Sunday, n)
		require.True(t, errors.Is(err, ErrInvalidValue), "n=%d", n)
	}
	_, err := FindDay(2015, 2, Sunday, 5)
	require.True(t, errors.Is(err, ErrInvalidValue))
}

func TestRange(t *testing.T) {
	d := MustDate(2015, 6, 2)
	for _, n := range []int{-10, -1, 0, 1, 10} {
		dates, err := d.RangeN(n)
		require.NoError(t, err)
		abs := n
		if abs < 0 {
			abs = -abs
		}
		require.Len(t, dates, abs+1)
		require.Equal(t, d, dates[0])
		require.Equal(t, n, d.Diff(dates[len(dates)-1], PeriodDay))
		to := dates[len(dates)-1]
		require.Equal(t, dates, d.Range(to))
		// Re-computing yields the same sequence.
		again, err := d.RangeN(n)
		require.NoError(t, err)
		require.Equal(t, dates, again)
	}
}

func TestRedactableErrors(t *testing.T) {
	_, _, err := MustDate(2015, 6, 5).Envelope(PeriodDay, MustDate(2015, 6, 2))
	require.True(t, errors.Is(err, ErrInvalidValue))
	// Dates are safe values and stay visible when the message is redacted.
	require.Contains(t, errors.Redact(err), "2015-06-02")
}

// requireAssertionPanic runs f and checks that it panics with an assertion
// failure.
func requireAssertionPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.IsAssertionFailure(err))
	}()
	f()
}

func TestUndefinedPeriod(t *testing.T) {
	d, p := MustDate(2015, 6, 2), Period(9)
	requireAssertionPanic(t, func() { _, _ = d.Move(1, p) })
	requireAssertionPanic(t, func() { _, _, _ = d.Envelope(p, d) })
	requireAssertionPanic(t, func() { d.Diff(d, p) })
	requireAssertionPanic(t, func() { d.Length(p) })
}

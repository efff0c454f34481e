package rdate

import "time"

// Day numbers count days since 1970-01-01 in the proleptic Gregorian
// calendar. They make day arithmetic and differences exact.
var (
	minDayNumber = Date{year: MinYear, month: 1, day: 1}.dayNumber()
	maxDayNumber = Date{year: MaxYear, month: 12, day: 31}.dayNumber()
)

// maxConvertibleDayNumber bounds the day numbers that can be scaled to
// seconds without overflow.
const maxConvertibleDayNumber = 1 << 40

func (d Date) dayNumber() int64 {
	return d.utc().Unix() / secondsPerDay
}

// dateFromDayNumber fails with ErrInvalidValue when n lies outside the
// supported years.
func dateFromDayNumber(n int64) (Date, error) {
	if n < minDayNumber || n > maxDayNumber {
		year := MinYear - 1
		if n > maxDayNumber {
			year = MaxYear + 1
		}
		if n > -maxConvertibleDayNumber && n < maxConvertibleDayNumber {
			year = time.Unix(n*secondsPerDay, 0).UTC().Year()
		}
		return Date{}, NewBoundsError("year", MinYear, MaxYear, year)
	}
	t := time.Unix(n*secondsPerDay, 0).UTC()
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// Move returns the date n periods away from d; n may be negative.
//
// Day and Week moves count days. Month moves carry into the year and clamp
// the day to the last day of the resulting month, so 2015-01-31 plus one
// month is 2015-02-28. Year moves keep month and day and fail with
// ErrInvalidValue when that day does not exist, e.g. from Feb 29 into a
// common year. Any move that leaves the supported years fails with
// ErrInvalidValue. An undefined Period panics with an assertion failure.
func (d Date) Move(n int, p Period) (Date, error) {
	switch p {
	case PeriodDay:
		return dateFromDayNumber(d.dayNumber() + int64(n))
	case PeriodWeek:
		return dateFromDayNumber(d.dayNumber() + int64(n)*daysPerWeek)
	case PeriodMonth:
		idx := d.year*12 + d.month - 1 + n
		year, month := floorDiv(idx, 12), floorMod(idx, 12)+1
		if year < MinYear || year > MaxYear {
			return Date{}, NewBoundsError("year", MinYear, MaxYear, year)
		}
		return NewDate(year, month, min(d.day, DaysInMonth(year, month)))
	case PeriodYear:
		return NewDate(d.year+n, d.month, d.day)
	}
	panic(unknownPeriod(p))
}

// Next returns the date n periods after d.
func (d Date) Next(n int, p Period) (Date, error) {
	return d.Move(n, p)
}

// Prev returns the date n periods before d.
func (d Date) Prev(n int, p Period) (Date, error) {
	return d.Move(-n, p)
}

// Range returns the dates from d to to, both inclusive, one day apart. The
// dates run backwards when to is before d.
func (d Date) Range(to Date) []Date {
	dates, _ := d.RangeN(d.Diff(to, PeriodDay))
	return dates
}

// RangeN returns d followed by the next n dates, or the previous -n dates
// when n is negative; RangeN(0) is just d. It fails with ErrInvalidValue
// when the last date would fall outside the supported years.
func (d Date) RangeN(n int) ([]Date, error) {
	start := d.dayNumber()
	if _, err := dateFromDayNumber(start + int64(n)); err != nil {
		return nil, err
	}
	step := int64(1)
	if n < 0 {
		step, n = -1, -n
	}
	dates := make([]Date, 0, n+1)
	for i := 0; i <= n; i++ {
		next, _ := dateFromDayNumber(start + int64(i)*step)
		dates = append(dates, next)
	}
	return dates, nil
}

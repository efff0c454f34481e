// Package rdate provides immutable calendar values: a time of day (Time), a
// date (Date) and their combination in a fixed time zone (DateTime), along
// with period arithmetic over days, weeks, months and years, weekdays with a
// configurable first day of the week, and POSIX timestamp conversion.
//
// All dates use the proleptic Gregorian calendar and are limited to the
// years MinYear through MaxYear. Every constructor validates its input and
// every failure is marked with ErrInvalidValue.
package rdate

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Supported years, inclusive.
const (
	MinYear = 1500
	MaxYear = 2500
)

var (
	daysInMonth     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	if IsLeapYear(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// Date is a day in the proleptic Gregorian calendar between MinYear-01-01
// and MaxYear-12-31. Dates are immutable and comparable with ==. The zero
// Date is not a valid date; use NewDate or ParseDate.
type Date struct {
	year, month, day int
}

// NewDate returns the date for year, month and day. It fails with
// ErrInvalidValue naming the first field that is out of range; the day is
// checked against the length of that month in that year.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, NewBoundsError("year", MinYear, MaxYear, year)
	}
	if month < 1 || month > 12 {
		return Date{}, NewValueError("month", month)
	}
	if last := DaysInMonth(year, month); day < 1 || day > last {
		return Date{}, NewBoundsError("day", 1, last, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on error.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current date in the host's local zone.
func Today() Date {
	return dateFromTime(now())
}

// dateFromTime returns the civil date of t in t's location. The clock is
// trusted to report a year within the supported range.
func dateFromTime(t time.Time) Date {
	d, err := NewDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "clock reported %s", t))
	}
	return d
}

// FindDay returns the n-th (1-5) occurrence of weekday in month of year,
// e.g. the 2nd Sunday of March. It fails with ErrInvalidValue when n is
// outside 1-5, including zero and negative n, or when the month has no such
// occurrence.
func FindDay(year, month int, weekday Weekday, n int) (Date, error) {
	first, err := NewDate(year, month, 1)
	if err != nil {
		return Date{}, err
	}
	if n < 1 || n > 5 {
		return Date{}, invalidf("cannot find day: occurrence %d of %s", n, weekday)
	}
	day := 1 + int(weekday.Sub(int(first.Weekday()))) + daysPerWeek*(n-1)
	if day > DaysInMonth(year, month) {
		return Date{}, invalidf("cannot find day: %s has no occurrence %d of %s",
			redact.Safe(fmt.Sprintf("%04d-%02d", year, month)), n, weekday)
	}
	return Date{year: year, month: month, day: day}, nil
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() int {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

func (d Date) utc() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	return WeekdayFromTime(d.utc().Weekday())
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func (d Date) IsWeekend() bool {
	return d.Weekday().IsWeekend()
}

// IsLeap reports whether d falls in a leap year, that is, a year of 366
// days.
func (d Date) IsLeap() bool {
	return d.Length(PeriodYear) == 366
}

// IsToday reports whether d is the current date in the host's local zone.
func (d Date) IsToday() bool {
	return d == Today()
}

// At returns the DateTime for t on d.
func (d Date) At(t Time) DateTime {
	return NewDateTime(d, t)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Less(o):
		return -1
	case o.Less(d):
		return 1
	}
	return 0
}

// Less reports whether d is before o.
func (d Date) Less(o Date) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// String returns d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// SafeValue implements redact.SafeValue.
func (Date) SafeValue() {}

var _ redact.SafeValue = Date{}

package rdate

import (
	"strings"
)

// dateTimeSeparators may sit between the date and the time in a DateTime
// string.
const dateTimeSeparators = " .,@:T"

// scanner reads numeric fields from the start of a string. It matches the
// way an anchored pattern such as `^(\d{1,2}):(\d{1,2})` would: everything
// after the last field read is ignored.
type scanner struct {
	s string
	i int
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// digits reads between lo and hi ASCII digits, as many as are present.
func (sc *scanner) digits(lo, hi int) (int, bool) {
	start := sc.i
	n := 0
	for sc.i < len(sc.s) && sc.i-start < hi && isDigit(sc.s[sc.i]) {
		n = n*10 + int(sc.s[sc.i]-'0')
		sc.i++
	}
	return n, sc.i-start >= lo
}

// expect consumes b if it is next.
func (sc *scanner) expect(b byte) bool {
	if sc.i < len(sc.s) && sc.s[sc.i] == b {
		sc.i++
		return true
	}
	return false
}

// fields reads len(widths) digit fields separated by sep, where widths
// holds the minimum and maximum digit count of each field.
func (sc *scanner) fields(sep byte, widths ...[2]int) ([]int, bool) {
	ret := make([]int, 0, len(widths))
	for i, w := range widths {
		if i > 0 && !sc.expect(sep) {
			return nil, false
		}
		n, ok := sc.digits(w[0], w[1])
		if !ok {
			return nil, false
		}
		ret = append(ret, n)
	}
	return ret, true
}

// ParseTime parses "hh:mm" or "hh:mm:ss", with one or two digits per field.
// Seconds default to zero and anything after the seconds is ignored. It
// fails with ErrInvalidValue when s has another shape or a field is out of
// range.
func ParseTime(s string) (Time, error) {
	sc := scanner{s: s + ":00"}
	f, ok := sc.fields(':', [2]int{1, 2}, [2]int{1, 2}, [2]int{1, 2})
	if !ok {
		return Time{}, NewValueError("time", s)
	}
	return NewTime(f[0], f[1], f[2])
}

// ParseDate parses "YYYY-MM-DD" where the year has exactly four digits and
// month and day have one or two. Anything after the day is ignored. It
// fails with ErrInvalidValue when s has another shape or a field is out of
// range.
func ParseDate(s string) (Date, error) {
	sc := scanner{s: s}
	f, ok := sc.fields('-', [2]int{4, 4}, [2]int{1, 2}, [2]int{1, 2})
	if !ok {
		return Date{}, NewValueError("date", s)
	}
	return NewDate(f[0], f[1], f[2])
}

// splitDateTime splits s into the run of digits and dashes at its start, and
// the run of digits and colons after the separator that follows it.
func splitDateTime(s string) (datePart, timePart string, ok bool) {
	i := 0
	advanceWhen := func(f func(b byte) bool) {
		for i < len(s) && f(s[i]) {
			i++
		}
	}
	advanceWhen(func(b byte) bool {
		return isDigit(b) || b == '-'
	})
	if i == len(s) || strings.IndexByte(dateTimeSeparators, s[i]) < 0 {
		return "", "", false
	}
	datePart = s[:i]
	i++
	start := i
	advanceWhen(func(b byte) bool {
		return isDigit(b) || b == ':'
	})
	return datePart, s[start:i], true
}

// ParseDateTime parses a date and a time joined by one of the separators
// ' ', '.', ',', '@', ':' or 'T', e.g. "2015-05-17 15:33:26" or
// "2015-05-17T9:30". The parts follow ParseDate and ParseTime. Every failure
// is reported as an invalid date/time citing s, with the underlying error
// attached as a secondary error.
func ParseDateTime(s string) (DateTime, error) {
	datePart, timePart, ok := splitDateTime(s)
	if !ok {
		return DateTime{}, invalidInput("date/time", s, nil)
	}
	d, err := ParseDate(datePart)
	if err != nil {
		return DateTime{}, invalidInput("date/time", s, err)
	}
	t, err := ParseTime(timePart)
	if err != nil {
		return DateTime{}, invalidInput("date/time", s, err)
	}
	return NewDateTime(d, t), nil
}

// ParseInstant parses s as a DateTime when a separator follows the date and
// as a Date otherwise. Once a separator is present a bad time is an error;
// it never falls back to the date alone.
func ParseInstant(s string) (Instant, error) {
	if _, _, ok := splitDateTime(s); ok {
		return ParseDateTime(s)
	}
	return ParseDate(s)
}

package rdate

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Time is a time of day with second precision. It can only be built through
// NewTime, ParseTime and the other constructors of this package, so it is
// always within 00:00:00 to 23:59:59; the zero value is midnight.
type Time struct {
	// packed is hour<<16 | minute<<8 | second.
	packed uint32
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

func packTime(hour, minute, second int) Time {
	return Time{packed: uint32(hour<<16 | minute<<8 | second)}
}

// NewTime returns the Time for the given hour, minute and second. It fails
// with ErrInvalidValue naming the first field that is out of range.
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, NewValueError("hour", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, NewValueError("minute", minute)
	}
	if second < 0 || second > 59 {
		return Time{}, NewValueError("second", second)
	}
	return packTime(hour, minute, second), nil
}

// MustTime is like NewTime but panics on error.
func MustTime(hour, minute, second int) Time {
	t, err := NewTime(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// timeFromSeconds returns the Time that is secs seconds after midnight;
// secs must be in [0, secondsPerDay).
func timeFromSeconds(secs int) Time {
	return packTime(secs/secondsPerHour, secs%secondsPerHour/secondsPerMinute, secs%secondsPerMinute)
}

// StartOfDay returns 00:00:00.
func StartOfDay() Time {
	return packTime(0, 0, 0)
}

// EndOfDay returns 23:59:59, one second before midnight.
func EndOfDay() Time {
	return packTime(23, 59, 59)
}

// Now returns the current time of day in the host's local zone.
func Now() Time {
	n := now()
	return packTime(n.Hour(), n.Minute(), n.Second())
}

func (t Time) Hour() int {
	return int(t.packed >> 16)
}

func (t Time) Minute() int {
	return int(t.packed >> 8 & 0xff)
}

func (t Time) Second() int {
	return int(t.packed & 0xff)
}

// Seconds returns the number of seconds since midnight.
func (t Time) Seconds() int {
	return t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second()
}

// Diff returns o - t in seconds, positive when o is later in the day. There
// is no day rollover: 23:00:00 to 01:00:00 is -79200.
func (t Time) Diff(o Time) int {
	return o.Seconds() - t.Seconds()
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after o.
func (t Time) Compare(o Time) int {
	switch d := t.Diff(o); {
	case d > 0:
		return -1
	case d < 0:
		return 1
	}
	return 0
}

// Less reports whether t is before o.
func (t Time) Less(o Time) bool {
	return t.Diff(o) > 0
}

// String returns t as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// SafeValue implements redact.SafeValue.
func (Time) SafeValue() {}

var _ redact.SafeValue = Time{}

package rdate

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// DateTime is a Date and a Time in a Timezone. Arithmetic treats it as civil
// time: Diff and To ignore daylight saving transitions.
//
// Comparing or subtracting DateTimes in different zones is a programming
// error and panics.
type DateTime struct {
	date Date
	time Time
	tz   Timezone
}

// NewDateTime returns t on d in the default zone.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t, tz: DefaultTimezone()}
}

// DateTimeFromDate returns the start of day d in the default zone.
func DateTimeFromDate(d Date) DateTime {
	return NewDateTime(d, StartOfDay())
}

// DateTimeFromUnix returns the DateTime for the POSIX timestamp ts, read in
// the host's local zone. The result carries no fold: both instants of a
// repeated fall-back hour give the same DateTime.
func DateTimeFromUnix(ts int64) (DateTime, error) {
	t := time.Unix(ts, 0).In(hostLocation)
	d, err := NewDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(d, packTime(t.Hour(), t.Minute(), t.Second())), nil
}

// NowDateTime returns the current date and time in the host's local zone.
func NowDateTime() DateTime {
	n := now()
	return NewDateTime(dateFromTime(n), packTime(n.Hour(), n.Minute(), n.Second()))
}

func (dt DateTime) Date() Date {
	return dt.date
}

func (dt DateTime) Time() Time {
	return dt.time
}

func (dt DateTime) Timezone() Timezone {
	return dt.tz
}

// Offset returns the number of hours dt's zone is behind UTC on dt's date.
func (dt DateTime) Offset() int {
	return dt.tz.Offset(dt.date)
}

func (dt DateTime) mustShareZone(o DateTime) {
	if dt.tz != o.tz {
		panic(errors.AssertionFailedf("mismatched time zones: %s and %s", dt.tz, o.tz))
	}
}

// seconds returns dt as seconds since 1970-01-01 00:00:00 civil time.
func (dt DateTime) seconds() int64 {
	return dt.date.dayNumber()*secondsPerDay + int64(dt.time.Seconds())
}

// Diff returns the number of seconds from dt to o, positive when o is
// later.
func (dt DateTime) Diff(o DateTime) int64 {
	dt.mustShareZone(o)
	return o.seconds() - dt.seconds()
}

// To returns the DateTime seconds after dt; seconds may be negative. It
// fails with ErrInvalidValue when the result leaves the supported years.
func (dt DateTime) To(seconds int64) (DateTime, error) {
	total := dt.seconds() + seconds
	days, secs := total/secondsPerDay, total%secondsPerDay
	if secs < 0 {
		days, secs = days-1, secs+secondsPerDay
	}
	d, err := dateFromDayNumber(days)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: timeFromSeconds(int(secs)), tz: dt.tz}, nil
}

// Since returns the number of seconds from dt to now.
func (dt DateTime) Since() int64 {
	return dt.Diff(NowDateTime())
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to or
// after o.
func (dt DateTime) Compare(o DateTime) int {
	dt.mustShareZone(o)
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

// Less reports whether dt is before o.
func (dt DateTime) Less(o DateTime) bool {
	return dt.Compare(o) < 0
}

// Equal reports whether dt and o are the same date and time.
func (dt DateTime) Equal(o DateTime) bool {
	return dt.Compare(o) == 0
}

// String returns dt as "YYYY-MM-DD HH:MM:SS ZONE".
func (dt DateTime) String() string {
	return Format(StyleDisplay, dt)
}

// ISOString returns dt as "YYYY-MM-DDTHH:MM:SS.000000-OO:00" where OO is
// the zone's offset on dt's date.
func (dt DateTime) ISOString() string {
	return Format(StyleISO, dt)
}

// SafeValue implements redact.SafeValue.
func (DateTime) SafeValue() {}

var _ redact.SafeValue = DateTime{}

package rdate

import "time"

// Instant is a value that names a civil instant: a Date (its start of day)
// or a DateTime.
type Instant interface {
	instant() DateTime
}

func (d Date) instant() DateTime {
	return DateTimeFromDate(d)
}

func (dt DateTime) instant() DateTime {
	return dt
}

// Unix returns the POSIX timestamp, in whole seconds, of dt read as a time
// in the host's local zone. A civil time repeated when the host zone falls
// back from daylight saving resolves to the earlier of its two instants, so
// for timestamps in the repeated hour Unix does not invert DateTimeFromUnix.
func (dt DateTime) Unix() int64 {
	return time.Date(dt.date.year, time.Month(dt.date.month), dt.date.day,
		dt.time.Hour(), dt.time.Minute(), dt.time.Second(), 0, hostLocation).Unix()
}

// Unix returns the POSIX timestamp of the start of d in the host's local
// zone.
func (d Date) Unix() int64 {
	return DateTimeFromDate(d).Unix()
}

// Timestamp returns the current POSIX time counted in units of prec, e.g.
// time.Millisecond for epoch milliseconds. A prec of zero or less means
// milliseconds.
func Timestamp(prec time.Duration) int64 {
	if prec <= 0 {
		prec = time.Millisecond
	}
	return hostClock.Now().UnixNano() / int64(prec)
}

// TimestampOf returns the POSIX timestamp of v in whole seconds, read in the
// host's local zone. Unlike Timestamp it takes no precision: explicit
// values are always counted in seconds.
func TimestampOf(v Instant) int64 {
	return v.instant().Unix()
}

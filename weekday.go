package rdate

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/redact"
)

// Weekday is a day of the week. Its value is the canonical ordinal,
// Monday=0 through Sunday=6. Arithmetic (Add, Sub, Diff) always works on the
// canonical ordinal; ordering (Compare, Less) follows the configured first
// day of the week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysPerWeek = 7

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayFromTime converts a time.Weekday, which counts from Sunday, to a
// Weekday.
func WeekdayFromTime(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % daysPerWeek)
}

// ParseWeekday parses a weekday name or any prefix of at least three
// letters of it, in either case, e.g. "Tue", "tues", "TUESDAY".
func ParseWeekday(s string) (Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(s))
	if len(lc) >= 3 {
		for i, name := range weekdayNames {
			if strings.HasPrefix(strings.ToLower(name), lc) {
				return Weekday(i), nil
			}
		}
	}
	return 0, NewValueError("weekday", s)
}

// Add returns the weekday n days after w; n may be negative.
func (w Weekday) Add(n int) Weekday {
	return Weekday(((int(w)+n)%daysPerWeek + daysPerWeek) % daysPerWeek)
}

// Sub returns the weekday n days before w; n may be negative.
func (w Weekday) Sub(n int) Weekday {
	return w.Add(-(n % daysPerWeek))
}

// Diff returns w - o on canonical ordinals, in [-6, 6]. It ignores the
// configured first day of the week.
func (w Weekday) Diff(o Weekday) int {
	return int(w) - int(o)
}

// Compare orders w and o by their position in the current week, see
// SetFirstDayOfWeek.
func (w Weekday) Compare(o Weekday) int {
	return CurrentWeek().Compare(w, o)
}

// Less reports whether w comes before o in the current week.
func (w Weekday) Less(o Weekday) bool {
	return w.Compare(o) < 0
}

// IsWeekend reports whether w is Saturday or Sunday, regardless of the
// configured first day of the week.
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// String implements fmt.Stringer.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}

// SafeValue implements redact.SafeValue.
func (Weekday) SafeValue() {}

var _ redact.SafeValue = Monday

// Week is a rotation of the seven weekdays starting at a chosen first day.
// The remaining six days follow in canonical cyclic order. The zero value
// is a week starting on Monday.
type Week struct {
	first Weekday
}

// NewWeek returns the week that starts on first.
func NewWeek(first Weekday) Week {
	return Week{first: first.Add(0)}
}

// First returns the first day of the week.
func (wk Week) First() Weekday {
	return wk.first
}

// Last returns the last day of the week.
func (wk Week) Last() Weekday {
	return wk.first.Add(daysPerWeek - 1)
}

// Days returns the seven weekdays in week order.
func (wk Week) Days() []Weekday {
	days := make([]Weekday, daysPerWeek)
	for i := range days {
		days[i] = wk.first.Add(i)
	}
	return days
}

// Position returns the zero based position of d within the week.
func (wk Week) Position(d Weekday) int {
	return int(d.Sub(int(wk.first)))
}

// Compare orders a and b by their position within the week.
func (wk Week) Compare(a, b Weekday) int {
	pa, pb := wk.Position(a), wk.Position(b)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

// SafeValue implements redact.SafeValue.
func (Week) SafeValue() {}

func (wk Week) String() string {
	return wk.first.String() + "-" + wk.Last().String()
}

// firstDayOfWeek holds the process-wide first day of the week used by
// Weekday ordering, Date.Envelope and Date.Diff. It is read atomically, but
// changing it while other goroutines compare weekdays or compute week
// envelopes makes their results depend on timing: configure it once at
// start up.
var firstDayOfWeek atomic.Int32

// CurrentWeek returns the process-wide week rotation, Monday first unless
// changed by SetFirstDayOfWeek.
func CurrentWeek() Week {
	return Week{first: Weekday(firstDayOfWeek.Load())}
}

// SetFirstDayOfWeek changes the process-wide week rotation so that w sorts
// first. It retroactively changes the ordering of all Weekday values and the
// result of week envelopes; it is intended to be called once, during
// initialization.
func SetFirstDayOfWeek(w Weekday) {
	firstDayOfWeek.Store(int32(w.Add(0)))
}

// FirstDayOfWeek returns the first day of the current week rotation.
func FirstDayOfWeek() Weekday {
	return CurrentWeek().First()
}

// LastDayOfWeek returns the last day of the current week rotation.
func LastDayOfWeek() Weekday {
	return CurrentWeek().Last()
}

// WeekdayRange returns the seven weekdays of the current week rotation.
func WeekdayRange() []Weekday {
	return CurrentWeek().Days()
}

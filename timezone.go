package rdate

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Timezone is one of the supported time zones. Only EST5EDT exists today.
type Timezone uint8

const (
	// EST5EDT is US Eastern time: UTC-5, or UTC-4 from the 2nd Sunday of
	// March through the 1st Sunday of November.
	EST5EDT Timezone = iota
)

// dstRule describes a daylight saving window whose first and last days are
// the nth Sunday of a month; both days are inside the window.
type dstRule struct {
	startMonth, startNth int
	endMonth, endNth     int
	// Hours behind UTC outside and inside the window.
	std, dst int
}

var timezones = [...]struct {
	name string
	rule dstRule
}{
	EST5EDT: {name: "EST", rule: dstRule{startMonth: 3, startNth: 2, endMonth: 11, endNth: 1, std: 5, dst: 4}},
}

// DefaultTimezone returns the zone given to every DateTime.
func DefaultTimezone() Timezone {
	return EST5EDT
}

func (z Timezone) valid() bool {
	return int(z) < len(timezones)
}

// Offset returns the number of hours z is behind UTC on d.
func (z Timezone) Offset(d Date) int {
	if !z.valid() {
		panic(errors.AssertionFailedf("unknown timezone %d", redact.Safe(uint8(z))))
	}
	r := timezones[z].rule
	start, err := FindDay(d.year, r.startMonth, Sunday, r.startNth)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "dst start for %s", z))
	}
	end, err := FindDay(d.year, r.endMonth, Sunday, r.endNth)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "dst end for %s", z))
	}
	if !d.Less(start) && !end.Less(d) {
		return r.dst
	}
	return r.std
}

// String returns the zone's abbreviation.
func (z Timezone) String() string {
	if !z.valid() {
		return "Timezone(" + strconv.Itoa(int(z)) + ")"
	}
	return timezones[z].name
}

// SafeValue implements redact.SafeValue.
func (Timezone) SafeValue() {}

var _ redact.SafeValue = EST5EDT

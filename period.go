package rdate

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Period is a span of calendar time used by date arithmetic. Periods are
// ordered by duration: PeriodDay < PeriodWeek < PeriodMonth < PeriodYear.
type Period uint8

const (
	PeriodDay Period = iota
	PeriodWeek
	PeriodMonth
	PeriodYear
)

var periodNames = [...]string{
	PeriodDay:   "day",
	PeriodWeek:  "week",
	PeriodMonth: "month",
	PeriodYear:  "year",
}

// Periods returns all periods, shortest first.
func Periods() []Period {
	return []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}
}

// ParsePeriod parses a period name ("day", "week", "month", "year") or its
// one letter abbreviation ("d", "w", "m", "y"), in either case.
func ParsePeriod(s string) (Period, error) {
	lc := strings.ToLower(strings.TrimSpace(s))
	for i, name := range periodNames {
		if lc == name || lc == name[:1] {
			return Period(i), nil
		}
	}
	return 0, NewValueError("period", s)
}

func (p Period) valid() bool {
	return int(p) < len(periodNames)
}

// Compare returns -1, 0 or +1 depending on whether p is shorter than, the
// same as, or longer than o.
func (p Period) Compare(o Period) int {
	switch {
	case p < o:
		return -1
	case p > o:
		return 1
	}
	return 0
}

// Less reports whether p is shorter than o.
func (p Period) Less(o Period) bool {
	return p < o
}

// String implements fmt.Stringer.
func (p Period) String() string {
	if !p.valid() {
		return "Period(" + strconv.Itoa(int(p)) + ")"
	}
	return periodNames[p]
}

// SafeValue implements redact.SafeValue.
func (Period) SafeValue() {}

var _ redact.SafeValue = Period(0)

// unknownPeriod is the assertion failure every Period switch panics with
// when p is not one of the defined periods.
func unknownPeriod(p Period) error {
	return errors.AssertionFailedf("unknown period %d", redact.Safe(uint8(p)))
}

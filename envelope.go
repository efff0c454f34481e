package rdate

// span returns the day numbers of the first and last day of the p envelope
// of d through to. Week envelopes follow wk.
func (d Date) span(wk Week, p Period, to Date) (start, end int64) {
	switch p {
	case PeriodDay:
		return d.dayNumber(), to.dayNumber()
	case PeriodWeek:
		return d.dayNumber() - int64(wk.Position(d.Weekday())),
			to.dayNumber() + int64(daysPerWeek-1-wk.Position(to.Weekday()))
	case PeriodMonth:
		return Date{d.year, d.month, 1}.dayNumber(),
			Date{to.year, to.month, DaysInMonth(to.year, to.month)}.dayNumber()
	case PeriodYear:
		return Date{d.year, 1, 1}.dayNumber(), Date{to.year, 12, 31}.dayNumber()
	}
	panic(unknownPeriod(p))
}

// Envelope returns the first and last day of the smallest run of whole
// periods covering d through to; pass d as to for the period containing d.
// Week envelopes start on the current first day of the week, see
// SetFirstDayOfWeek. A Day envelope requires to not to be before d.
// Like Move, Diff and Length, it panics on an undefined Period.
func (d Date) Envelope(p Period, to Date) (start, end Date, err error) {
	return d.EnvelopeIn(CurrentWeek(), p, to)
}

// EnvelopeIn is like Envelope but aligns week envelopes to wk instead of the
// process-wide week.
func (d Date) EnvelopeIn(wk Week, p Period, to Date) (start, end Date, err error) {
	if p == PeriodDay && to.Less(d) {
		return Date{}, Date{}, invalidf("to_date must be after this date: %s is before %s", to, d)
	}
	s, e := d.span(wk, p, to)
	if start, err = dateFromDayNumber(s); err != nil {
		return Date{}, Date{}, err
	}
	if end, err = dateFromDayNumber(e); err != nil {
		return Date{}, Date{}, err
	}
	return start, end, nil
}

// Diff returns the signed number of whole periods from d to o, positive when
// o is later.
//
// Day differences are exact. Week differences count the week boundaries
// crossed under the current week rotation: within one week the difference
// is 0 even six days apart. Month differences ignore the day of the month
// and year differences ignore both month and day.
func (d Date) Diff(o Date, p Period) int {
	return d.DiffIn(CurrentWeek(), o, p)
}

// DiffIn is like Diff but counts week boundaries of wk instead of the
// process-wide week.
func (d Date) DiffIn(wk Week, o Date, p Period) int {
	switch p {
	case PeriodDay:
		return int(o.dayNumber() - d.dayNumber())
	case PeriodWeek:
		if o.Less(d) {
			return -o.DiffIn(wk, d, p)
		}
		s, e := d.span(wk, PeriodWeek, o)
		return int((e - s) / daysPerWeek)
	case PeriodMonth:
		return (o.year-d.year)*12 + (o.month - d.month)
	case PeriodYear:
		return o.year - d.year
	}
	panic(unknownPeriod(p))
}

// Length returns the number of days in the period containing d: 1, 7, the
// length of d's month, or the length of d's year.
func (d Date) Length(p Period) int {
	s, e := d.span(CurrentWeek(), p, d)
	return int(e-s) + 1
}

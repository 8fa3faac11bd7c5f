package awscron

import (
	"slices"
	"time"
)

// Occurrence pairs one Expression with one anchor instant. It holds no state
// across calls; Next and Prev recompute from the anchor every time, so a
// single Occurrence is safe for concurrent use.
type Occurrence struct {
	expr   *Expression
	anchor time.Time
}

// Next returns the first matching minute strictly after the anchor, or the
// zero time if no match exists before the year upper bound (2199).
//
// General approach, field by field from year down to minute: check whether
// the candidate matches; if not, jump to the boundary of the next candidate
// unit. A wrap into a higher unit restarts verification from the top, so an
// already-rejected instant is never revisited.
func (o *Occurrence) Next() (time.Time, error) {
	// The search is exclusive of the anchor: truncate to the minute, then
	// start at the following one.
	t := o.anchor.Truncate(time.Minute).Add(time.Minute)

WRAP:
	if t.Year() > yearBounds.max {
		return time.Time{}, nil
	}

	for !o.expr.years.matches(t.Year()) {
		t = time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		if t.Year() > yearBounds.max {
			return time.Time{}, nil
		}
	}

	for !o.expr.months.matches(int(t.Month())) {
		t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		if t.Month() == time.January {
			goto WRAP
		}
	}

	for {
		ok, err := o.dayMatches(t)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			break
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		if t.Day() == 1 {
			goto WRAP
		}
	}

	for !o.expr.hours.matches(t.Hour()) {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC).Add(time.Hour)
		if t.Hour() == 0 {
			goto WRAP
		}
	}

	for !o.expr.minutes.matches(t.Minute()) {
		t = t.Add(time.Minute)
		if t.Minute() == 0 {
			goto WRAP
		}
	}

	return t, nil
}

// Prev returns the first matching minute strictly before the anchor, or the
// zero time if no match exists after the year lower bound (1970). It mirrors
// Next with the search direction reversed: a rejected candidate jumps to the
// last minute of the previous unit.
func (o *Occurrence) Prev() (time.Time, error) {
	t := o.anchor.Truncate(time.Minute).Add(-time.Minute)

WRAP:
	if t.Year() < yearBounds.min {
		return time.Time{}, nil
	}

	for !o.expr.years.matches(t.Year()) {
		t = time.Date(t.Year()-1, time.December, 31, 23, 59, 0, 0, time.UTC)
		if t.Year() < yearBounds.min {
			return time.Time{}, nil
		}
	}

	for !o.expr.months.matches(int(t.Month())) {
		// Last minute of the previous month.
		t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Add(-time.Minute)
		if t.Month() == time.December {
			goto WRAP
		}
	}

	for {
		ok, err := o.dayMatches(t)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			break
		}
		month := t.Month()
		t = time.Date(t.Year(), month, t.Day(), 0, 0, 0, 0, time.UTC).Add(-time.Minute)
		if t.Month() != month {
			goto WRAP
		}
	}

	for !o.expr.hours.matches(t.Hour()) {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC).Add(-time.Minute)
		if t.Hour() == 23 {
			goto WRAP
		}
	}

	for !o.expr.minutes.matches(t.Minute()) {
		t = t.Add(-time.Minute)
		if t.Minute() == 59 {
			goto WRAP
		}
	}

	return t, nil
}

// dayMatches reports whether t's day is in the set of valid days for its
// month. In AWS cron exactly one of day-of-month and day-of-week carries the
// day selection while the other is "?": when day-of-month is "?" the valid
// days come from the day-of-week constraint via the calendar resolver,
// otherwise the day-of-month constraint is evaluated directly. When both are
// concrete (undefined input, not rejected at parse time) the day-of-month
// field wins.
func (o *Occurrence) dayMatches(t time.Time) (bool, error) {
	year, month, day := t.Year(), t.Month(), t.Day()

	dom := o.expr.daysOfMonth
	switch dom.Kind {
	case Unspecified:
		return slices.Contains(daysFromWeekday(year, month, o.expr.daysOfWeek), day), nil
	case Enumerated:
		return dom.matches(day), nil
	case LastDayOfMonth:
		days, err := daysForLastDay(year, month, dom.Offset)
		if err != nil {
			return false, err
		}
		return slices.Contains(days, day), nil
	case NearestWeekday:
		days, err := daysForNearestWeekday(year, month, dom.Day)
		if err != nil {
			return false, err
		}
		return slices.Contains(days, day), nil
	default:
		// Weekday-shaped token in the day-of-month slot: evaluate it as a
		// weekday constraint, matching how the field itself was parsed.
		return slices.Contains(daysFromWeekday(year, month, dom), day), nil
	}
}

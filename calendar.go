package awscron

import "time"

// awsWeekday maps time.Weekday onto the AWS numbering (1=Sunday .. 7=Saturday).
// The domain is a closed 7-element bijection, so it is a fixed table rather
// than arithmetic.
var awsWeekday = [7]int{
	time.Sunday:    1,
	time.Monday:    2,
	time.Tuesday:   3,
	time.Wednesday: 4,
	time.Thursday:  5,
	time.Friday:    6,
	time.Saturday:  7,
}

// daysInMonth returns the number of calendar days in the given month.
// Day 0 of the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isWeekday reports whether year/month/day is a Monday-Friday date. Days
// outside the month's valid range (including nonsense values like 0 or 32)
// are not weekdays.
func isWeekday(year int, month time.Month, day int) bool {
	if day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Year() != year {
		return false
	}
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// daysFromWeekday materializes the day-of-month values implied by a
// day-of-week constraint for the given month.
//
// For an Enumerated weekday set every matching day is returned. For
// LastWeekdayOfMonth the single day whose next same weekday falls in the
// following month is returned. For NthWeekdayOfMonth the day where the
// running occurrence count first reaches N is returned; a month with fewer
// occurrences yields an empty set.
func daysFromWeekday(year int, month time.Month, f Field) []int {
	var days []int
	seen := 0
	last := daysInMonth(year, month)
	for day := 1; day <= last; day++ {
		wd := awsWeekday[time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()]
		switch f.Kind {
		case LastWeekdayOfMonth:
			if wd == f.Weekday && day+7 > last {
				return []int{day}
			}
		case NthWeekdayOfMonth:
			if wd == f.Weekday {
				seen++
				if seen == f.N {
					return []int{day}
				}
			}
		case Enumerated:
			if f.matches(wd) {
				days = append(days, day)
			}
		}
	}
	return days
}

// daysForLastDay resolves an "L"/"L-n" day-of-month constraint: the month's
// last calendar day minus the offset. An offset reaching past day 1 yields a
// day no candidate can match, which the search skips naturally.
func daysForLastDay(year int, month time.Month, offset int) ([]int, error) {
	last := daysInMonth(year, month)
	if last < 28 {
		// Cannot happen for any valid month; guard against a silent bad result.
		return nil, ErrResolutionExhausted
	}
	return []int{last - offset}, nil
}

// daysForNearestWeekday resolves an "nW" day-of-month constraint: the
// Monday-Friday date closest to day, searching offsets in priority order
// 0, +1, -1, +2, -2 and never crossing a month boundary. If the reference
// day exceeds the month's length the set may resolve from a smaller day or
// be empty for that month.
func daysForNearestWeekday(year int, month time.Month, day int) ([]int, error) {
	for _, offset := range [5]int{0, 1, -1, 2, -2} {
		if !isWeekday(year, month, day+offset) {
			continue
		}
		resolved := day + offset
		if resolved > daysInMonth(year, month) {
			return nil, nil
		}
		return []int{resolved}, nil
	}
	// The offsets span a full week window, so one of them is always a
	// weekday; signal instead of looping forever on a logic defect.
	return nil, ErrResolutionExhausted
}

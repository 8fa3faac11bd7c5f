package awscron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Three-letter name substitutions, applied as sequential substring
// replacements in table order after upcasing the field. This reproduces the
// AWS tooling behavior exactly: names are replaced wherever they appear, so
// free text that merely contains one of these tokens is silently mangled
// rather than rejected.
var monthReplacements = [][2]string{
	{"JAN", "1"},
	{"FEB", "2"},
	{"MAR", "3"},
	{"APR", "4"},
	{"MAY", "5"},
	{"JUN", "6"},
	{"JUL", "7"},
	{"AUG", "8"},
	{"SEP", "9"},
	{"OCT", "10"},
	{"NOV", "11"},
	{"DEC", "12"},
}

var dowReplacements = [][2]string{
	{"SUN", "1"},
	{"MON", "2"},
	{"TUE", "3"},
	{"WED", "4"},
	{"THU", "5"},
	{"FRI", "6"},
	{"SAT", "7"},
}

func replaceNames(field string, table [][2]string) string {
	s := strings.ToUpper(field)
	for _, r := range table {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s
}

// parseField converts one raw cron field into a Field constraint. The
// special forms are recognized by token shape alone, checked in this order:
// "?", "L", "L-n", "nL", "nW", "n#m". Anything else is expanded to an
// Enumerated set.
func parseField(raw string, b bounds) (Field, error) {
	switch {
	case raw == "?":
		return Field{Kind: Unspecified}, nil

	case raw == "L":
		return Field{Kind: LastDayOfMonth}, nil

	case strings.HasPrefix(raw, "L-"):
		n, err := parsePositiveInt(raw[2:])
		if err != nil {
			return Field{}, fmt.Errorf("%w: bad last-day offset %q: %v", ErrParse, raw, err)
		}
		return Field{Kind: LastDayOfMonth, Offset: n}, nil

	case strings.HasSuffix(raw, "L"):
		n, err := parsePositiveInt(strings.TrimSuffix(raw, "L"))
		if err != nil {
			return Field{}, fmt.Errorf("%w: bad last-weekday %q: %v", ErrParse, raw, err)
		}
		if n < b.min || n > b.max {
			return Field{}, fmt.Errorf("%w: weekday (%d) out of range [%d,%d]: %q", ErrParse, n, b.min, b.max, raw)
		}
		return Field{Kind: LastWeekdayOfMonth, Weekday: n}, nil

	case strings.HasSuffix(raw, "W"):
		n, err := parsePositiveInt(strings.TrimSuffix(raw, "W"))
		if err != nil {
			return Field{}, fmt.Errorf("%w: bad nearest-weekday %q: %v", ErrParse, raw, err)
		}
		if n < b.min || n > b.max {
			return Field{}, fmt.Errorf("%w: day (%d) out of range [%d,%d]: %q", ErrParse, n, b.min, b.max, raw)
		}
		return Field{Kind: NearestWeekday, Day: n}, nil

	case strings.Contains(raw, "#"):
		parts := strings.Split(raw, "#")
		if len(parts) != 2 {
			return Field{}, fmt.Errorf("%w: too many hashes: %q", ErrParse, raw)
		}
		weekday, err := parsePositiveInt(parts[0])
		if err != nil {
			return Field{}, fmt.Errorf("%w: bad nth-weekday %q: %v", ErrParse, raw, err)
		}
		nth, err := parsePositiveInt(parts[1])
		if err != nil {
			return Field{}, fmt.Errorf("%w: bad nth-weekday %q: %v", ErrParse, raw, err)
		}
		if weekday < b.min || weekday > b.max {
			return Field{}, fmt.Errorf("%w: weekday (%d) out of range [%d,%d]: %q", ErrParse, weekday, b.min, b.max, raw)
		}
		if nth < 1 {
			return Field{}, fmt.Errorf("%w: occurrence index must be at least 1: %q", ErrParse, raw)
		}
		return Field{Kind: NthWeekdayOfMonth, Weekday: weekday, N: nth}, nil
	}

	values, err := expandList(raw, b)
	if err != nil {
		return Field{}, err
	}
	return Field{Kind: Enumerated, Values: values}, nil
}

// expandList expands a comma-separated list of ranges into a sorted value
// set. Entries are unioned in order and not deduplicated; overlapping ranges
// leave duplicates in the sorted result.
func expandList(field string, b bounds) ([]int, error) {
	var values []int
	for _, expr := range strings.Split(field, ",") {
		vals, err := expandRange(expr, b)
		if err != nil {
			return nil, err
		}
		values = append(values, vals...)
	}
	sort.Ints(values)
	return values, nil
}

// expandRange expands a single list entry:
//
//	* | number | number "-" number [ "/" number ] | number "/" number | "*" "/" number
//
// A stepped entry without an upper bound ("a/step") runs to the field
// maximum. Steps expand by repeated addition until the end is exceeded.
func expandRange(expr string, b bounds) ([]int, error) {
	rangeAndStep := strings.Split(expr, "/")
	lowAndHigh := strings.Split(rangeAndStep[0], "-")
	singleValue := len(lowAndHigh) == 1

	var start, end int
	if rangeAndStep[0] == "*" {
		start, end = b.min, b.max
	} else {
		var err error
		start, err = parsePositiveInt(lowAndHigh[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrParse, expr, err)
		}
		switch len(lowAndHigh) {
		case 1:
			end = start
		case 2:
			end, err = parsePositiveInt(lowAndHigh[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrParse, expr, err)
			}
		default:
			return nil, fmt.Errorf("%w: too many hyphens: %q", ErrParse, expr)
		}
	}

	step := 1
	switch len(rangeAndStep) {
	case 1:
	case 2:
		var err error
		step, err = parsePositiveInt(rangeAndStep[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad step %q: %v", ErrParse, expr, err)
		}
		// "N/step" means "N-max/step".
		if singleValue && rangeAndStep[0] != "*" {
			end = b.max
		}
	default:
		return nil, fmt.Errorf("%w: too many slashes: %q", ErrParse, expr)
	}

	if start < b.min {
		return nil, fmt.Errorf("%w: beginning of range (%d) below minimum (%d): %q", ErrParse, start, b.min, expr)
	}
	if end > b.max {
		return nil, fmt.Errorf("%w: end of range (%d) above maximum (%d): %q", ErrParse, end, b.max, expr)
	}
	if start > end {
		return nil, fmt.Errorf("%w: beginning of range (%d) beyond end of range (%d): %q", ErrParse, start, end, expr)
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: step of range must be a positive number: %q", ErrParse, expr)
	}

	values := make([]int, 0, (end-start)/step+1)
	for v := start; v <= end; v += step {
		values = append(values, v)
	}
	return values, nil
}

// parsePositiveInt parses expr as a non-negative integer.
func parsePositiveInt(expr string) (int, error) {
	n, err := strconv.Atoi(expr)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int from %q", expr)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative number (%d) not allowed", n)
	}
	return n, nil
}

package awscron

import (
	"fmt"
	"time"
)

// NextN parses cron once and returns its next n occurrences strictly after
// from, each result feeding the next search as its anchor. The sequence is
// shorter than n if the schedule runs out before the year upper bound.
//
// It returns an error wrapping ErrParse for invalid cron text and
// ErrInvalidInput if from is not explicitly UTC.
//
// Example:
//
//	times, err := awscron.NextN(10, time.Now().UTC(), "0 9 ? * MON-FRI *")
//	for _, t := range times {
//	    fmt.Println("next run:", t)
//	}
func NextN(n int, from time.Time, cron string) ([]time.Time, error) {
	expr, err := Parse(cron)
	if err != nil {
		return nil, err
	}
	if err := requireUTC(from); err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, max(n, 0))
	for i := 0; i < n; i++ {
		occ, err := expr.Occurrence(from)
		if err != nil {
			return nil, err
		}
		next, err := occ.Next()
		if err != nil {
			return nil, err
		}
		if next.IsZero() {
			break
		}
		times = append(times, next)
		from = next
	}
	return times, nil
}

// PrevN is the backward counterpart of NextN: the n occurrences strictly
// before from, most recent first.
func PrevN(n int, from time.Time, cron string) ([]time.Time, error) {
	expr, err := Parse(cron)
	if err != nil {
		return nil, err
	}
	if err := requireUTC(from); err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, max(n, 0))
	for i := 0; i < n; i++ {
		occ, err := expr.Occurrence(from)
		if err != nil {
			return nil, err
		}
		prev, err := occ.Prev()
		if err != nil {
			return nil, err
		}
		if prev.IsZero() {
			break
		}
		times = append(times, prev)
		from = prev
	}
	return times, nil
}

// AllBetween returns every occurrence of cron between from and to, both
// truncated to the minute and inclusive. With excludeEnds set, a first
// result equal to the truncated from and a last result equal to the
// truncated to are dropped.
//
// WARNING: for high-frequency schedules over long ranges this can return
// many results. Use AllBetweenLimit for bounded queries.
func AllBetween(from, to time.Time, cron string, excludeEnds bool) ([]time.Time, error) {
	return AllBetweenLimit(from, to, cron, excludeEnds, 0)
}

// AllBetweenLimit is AllBetween collecting at most limit occurrences before
// the exclude-ends trim. A limit of 0 or below applies no bound.
func AllBetweenLimit(from, to time.Time, cron string, excludeEnds bool, limit int) ([]time.Time, error) {
	expr, err := Parse(cron)
	if err != nil {
		return nil, err
	}
	if err := requireUTC(from); err != nil {
		return nil, err
	}
	if err := requireUTC(to); err != nil {
		return nil, err
	}

	// Back the cursor up one minute so an occurrence exactly at the
	// truncated from is included.
	cursor := from.Truncate(time.Minute).Add(-time.Minute)
	stop := to.Truncate(time.Minute)

	var times []time.Time
	for limit <= 0 || len(times) < limit {
		occ, err := expr.Occurrence(cursor)
		if err != nil {
			return nil, err
		}
		next, err := occ.Next()
		if err != nil {
			return nil, err
		}
		if next.IsZero() || next.After(stop) {
			break
		}
		times = append(times, next)
		cursor = next
	}

	if excludeEnds {
		if len(times) > 0 && times[0].Equal(from.Truncate(time.Minute)) {
			times = times[1:]
		}
		if len(times) > 0 && times[len(times)-1].Equal(stop) {
			times = times[:len(times)-1]
		}
	}
	return times, nil
}

func requireUTC(t time.Time) error {
	if t.Location() != time.UTC {
		return fmt.Errorf("%w: got location %q", ErrInvalidInput, t.Location())
	}
	return nil
}

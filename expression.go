package awscron

import (
	"fmt"
	"strings"
	"time"
)

// Expression is one parsed AWS cron expression: six immutable field
// constraints plus the original text. It is computed once at construction
// and never mutated, so a single Expression may be shared and queried from
// multiple goroutines without locking.
type Expression struct {
	text string

	minutes     Field
	hours       Field
	daysOfMonth Field
	months      Field
	daysOfWeek  Field
	years       Field
}

// Parse parses the given six-field AWS cron expression
// ("minutes hours day-of-month month day-of-week year").
// It returns an error wrapping ErrParse if the text does not split into
// exactly six fields or any field fails validation.
func Parse(text string) (*Expression, error) {
	fields := strings.Fields(text)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected exactly 6 fields, found %d: %q", ErrParse, len(fields), text)
	}

	expr := &Expression{text: text}
	var err error
	if expr.minutes, err = parseField(fields[0], minuteBounds); err != nil {
		return nil, err
	}
	if expr.hours, err = parseField(fields[1], hourBounds); err != nil {
		return nil, err
	}
	if expr.daysOfMonth, err = parseField(fields[2], domBounds); err != nil {
		return nil, err
	}
	if expr.months, err = parseField(replaceNames(fields[3], monthReplacements), monthBounds); err != nil {
		return nil, err
	}
	if expr.daysOfWeek, err = parseField(replaceNames(fields[4], dowReplacements), dowBounds); err != nil {
		return nil, err
	}
	if expr.years, err = parseField(fields[5], yearBounds); err != nil {
		return nil, err
	}
	return expr, nil
}

// Text returns the original expression text.
func (e *Expression) Text() string { return e.text }

// String returns the expression in AWS display form, e.g. "cron(0 12 * * ? *)".
func (e *Expression) String() string { return "cron(" + e.text + ")" }

// Minutes returns the minutes constraint. The returned Field (including any
// Values slice) must be treated as read-only.
func (e *Expression) Minutes() Field { return e.minutes }

// Hours returns the hours constraint.
func (e *Expression) Hours() Field { return e.hours }

// DaysOfMonth returns the day-of-month constraint.
func (e *Expression) DaysOfMonth() Field { return e.daysOfMonth }

// Months returns the month constraint.
func (e *Expression) Months() Field { return e.months }

// DaysOfWeek returns the day-of-week constraint.
func (e *Expression) DaysOfWeek() Field { return e.daysOfWeek }

// Years returns the year constraint.
func (e *Expression) Years() Field { return e.years }

// Occurrence pairs the expression with an anchor instant for occurrence
// queries. It returns an error wrapping ErrInvalidInput unless t is
// explicitly UTC; instants in other locations are rejected, not converted.
func (e *Expression) Occurrence(t time.Time) (*Occurrence, error) {
	if t.Location() != time.UTC {
		return nil, fmt.Errorf("%w: got location %q", ErrInvalidInput, t.Location())
	}
	return &Occurrence{expr: e, anchor: t}, nil
}

// Matches reports whether the UTC instant t, truncated to the minute,
// satisfies every field of the expression.
func (e *Expression) Matches(t time.Time) (bool, error) {
	occ, err := e.Occurrence(t.Truncate(time.Minute).Add(-time.Minute))
	if err != nil {
		return false, err
	}
	next, err := occ.Next()
	if err != nil {
		return false, err
	}
	return !next.IsZero() && next.Equal(t.Truncate(time.Minute)), nil
}

package awscron

import "slices"

// FieldKind discriminates the constraint forms a single cron field can take.
type FieldKind int

// Field constraint kinds. Enumerated covers everything expressible as a
// plain value set (*, lists, ranges, steps); the rest carry parameters that
// a value set cannot, so they are distinct variants.
const (
	// Enumerated is an explicit sorted set of allowed values.
	Enumerated FieldKind = iota

	// Unspecified is the "?" placeholder, legal only for day-of-month and
	// day-of-week. Exactly one of the two should carry real day selection.
	Unspecified

	// LastDayOfMonth is "L" or "L-n": Offset days before the month's last
	// calendar day (offset 0 = the last day itself).
	LastDayOfMonth

	// LastWeekdayOfMonth is "nL": the final occurrence of Weekday in the
	// month.
	LastWeekdayOfMonth

	// NearestWeekday is "nW": the Monday-Friday date closest to Day,
	// preferring the later date on ties and never leaving the month.
	NearestWeekday

	// NthWeekdayOfMonth is "n#m": the N-th occurrence of Weekday in the
	// month, counted from day 1.
	NthWeekdayOfMonth
)

// Field is the parsed constraint for one cron field. Which parameter fields
// are meaningful depends on Kind; the rest are zero. Fields are built once
// during parsing and never mutated afterwards.
type Field struct {
	Kind FieldKind

	// Values holds the allowed values for Enumerated constraints, sorted
	// ascending. Duplicates from overlapping list entries are preserved.
	Values []int

	// Weekday is the AWS weekday number (1=Sunday .. 7=Saturday) for
	// LastWeekdayOfMonth and NthWeekdayOfMonth.
	Weekday int

	// Day is the reference day-of-month for NearestWeekday.
	Day int

	// Offset is the days-before-last count for LastDayOfMonth.
	Offset int

	// N is the occurrence index for NthWeekdayOfMonth.
	N int
}

// matches reports whether v satisfies an Enumerated constraint. All other
// kinds never match a bare value; they are resolved per-month by the
// calendar resolver instead.
func (f Field) matches(v int) bool {
	return f.Kind == Enumerated && slices.Contains(f.Values, v)
}

// bounds provides the valid value range for one cron field.
type bounds struct {
	min, max int
}

// The bounds for each field, AWS numbering (day-of-week 1=Sunday).
var (
	minuteBounds = bounds{0, 59}
	hourBounds   = bounds{0, 23}
	domBounds    = bounds{1, 31}
	monthBounds  = bounds{1, 12}
	dowBounds    = bounds{1, 7}
	yearBounds   = bounds{1970, 2199}
)

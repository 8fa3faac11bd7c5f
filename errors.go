package awscron

import "errors"

// ErrParse is returned when cron text does not conform to the six-field AWS
// grammar: wrong field count, an unrecognized token, or a non-numeric value
// where an integer was required. Parse errors are wrapped with context;
// test with errors.Is.
var ErrParse = errors.New("invalid cron expression")

// ErrInvalidInput is returned when a query anchor or bound is not an
// explicitly UTC instant. Times in any other location are rejected rather
// than converted.
var ErrInvalidInput = errors.New("time must be explicitly UTC")

// ErrResolutionExhausted is returned when the nearest-weekday resolver finds
// no weekday within its offset window. The window always spans a full week,
// so this cannot occur for any real calendar; seeing it indicates a defect
// rather than bad input.
var ErrResolutionExhausted = errors.New("nearest-weekday resolution exhausted")

/*
Package awscron evaluates AWS-style six-field cron expressions against UTC
instants at minute granularity.

# Installation

To download the package, run:

	go get github.com/netresearch/go-aws-cron

Import it in your program as:

	import awscron "github.com/netresearch/go-aws-cron"

It requires Go 1.25 or later.

# Usage

Parse an expression once and query it for occurrences, or use the batch
helpers directly:

	expr, err := awscron.Parse("0/23 * * * ? *")
	if err != nil {
	    log.Fatal(err)
	}
	occ, err := expr.Occurrence(time.Now().UTC())
	if err != nil {
	    log.Fatal(err)
	}
	next, err := occ.Next() // zero time if no match before year 2199
	...

	times, err := awscron.NextN(10, time.Now().UTC(), "0 9 ? * MON-FRI *")

All query anchors and bounds must be explicitly UTC (location time.UTC);
instants in any other location are rejected with ErrInvalidInput rather than
converted.

# Expression Format

An AWS cron expression has 6 space-separated fields:

	Field name   | Allowed values  | Allowed special characters
	----------   | --------------  | --------------------------
	Minutes      | 0-59            | * / , -
	Hours        | 0-23            | * / , -
	Day of month | 1-31            | * / , - ? L W
	Month        | 1-12 or JAN-DEC | * / , -
	Day of week  | 1-7 or SUN-SAT  | * / , - ? L #
	Year         | 1970-2199       | * / , -

Day-of-week uses the AWS numbering: 1 is Sunday and 7 is Saturday. Month and
day-of-week names are case insensitive.

# Special Characters

Asterisk ( * )

The asterisk matches every value of the field.

Slash ( / )

Slashes describe steps: "0/23" in the minutes field means minutes 0, 23 and
46. The left side may be a value ("5/15" runs to the field maximum), a range
("10-30/5") or an asterisk.

Comma ( , )

Commas separate items of a list: "MON,WED,FRI".

Hyphen ( - )

Hyphens define inclusive ranges: "9-17" in the hours field is every hour
from 9 through 17.

Question mark ( ? )

Day-of-month and day-of-week constrain each other: one of the two carries
the day selection and the other must be the "?" placeholder. Both fields
concretely specified at once is undefined input; it is not rejected, and the
day-of-month field takes precedence.

L

In the day-of-month field, "L" is the last day of the month and "L-3" three
days before it. In the day-of-week field, "5L" is the last Thursday of the
month.

W

"15W" in the day-of-month field is the weekday (Monday-Friday) nearest to
the 15th, preferring the later date on ties and never crossing into another
month. A reference day past the month's end yields no occurrence that month.

Hash ( # )

"1#2" in the day-of-week field is the second Sunday of the month. A month
without an n-th such weekday yields no occurrence.

# Thread Safety

An Expression is immutable after Parse and may be shared across goroutines
without locking. Occurrence queries hold no mutable state.
*/
package awscron

package awscron

// Validate checks cron text without building occurrence queries. It returns
// nil if the text is a well-formed six-field AWS cron expression, or an
// error wrapping ErrParse describing the problem.
//
// Example:
//
//	if err := awscron.Validate(userInput); err != nil {
//	    return fmt.Errorf("invalid schedule: %w", err)
//	}
func Validate(text string) error {
	_, err := Parse(text)
	return err
}

// MustParse is like Parse but panics on error. Use it for hardcoded
// expressions where a parse failure is a programming error rather than a
// runtime condition.
func MustParse(text string) *Expression {
	expr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return expr
}

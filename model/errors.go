package model

import "fmt"

// MalformedRuleError is returned when a rule triple cannot describe a
// translation, e.g. its length is not positive.
type MalformedRuleError struct {
	Dest   int64
	Source int64
	Length int64
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed rule (%d %d %d): %s", e.Dest, e.Source, e.Length, e.Reason)
}

// InvalidIntervalError is returned when [Start, End) would be empty or
// negative.
type InvalidIntervalError struct {
	Start int64
	End   int64
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval [%d, %d)", e.Start, e.End)
}

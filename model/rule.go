package model

import (
	"fmt"
	"math"
)

// Rule translates every value inside its source interval by Delta.
//
// It is built from the (destination, source, length) triple of the input, so
// Delta = destination - source.
type Rule struct {
	SourceStart  int64
	SourceLength int64
	Delta        int64
}

// NewRule builds a Rule from a destination start, a source start and a length.
func NewRule(dest, src, length int64) (Rule, error) {
	if length <= 0 {
		return Rule{}, &MalformedRuleError{Dest: dest, Source: src, Length: length, Reason: "length must be positive"}
	}
	if dest < 0 || src < 0 {
		return Rule{}, &MalformedRuleError{Dest: dest, Source: src, Length: length, Reason: "bounds must not be negative"}
	}
	if length > math.MaxInt64-src || length > math.MaxInt64-dest {
		return Rule{}, &MalformedRuleError{Dest: dest, Source: src, Length: length, Reason: "end overflows int64"}
	}
	return Rule{
		SourceStart:  src,
		SourceLength: length,
		Delta:        dest - src,
	}, nil
}

// Source returns [SourceStart, SourceStart+SourceLength).
func (r Rule) Source() Interval {
	return Interval{Start: r.SourceStart, End: r.SourceStart + r.SourceLength}
}

// Apply maps v if it is inside the source interval. The second result reports
// whether the rule matched.
func (r Rule) Apply(v int64) (int64, bool) {
	if !r.Source().Contains(v) {
		return v, false
	}
	return v + r.Delta, true
}

func (r Rule) String() string {
	return fmt.Sprintf("%s%+d", r.Source(), r.Delta)
}

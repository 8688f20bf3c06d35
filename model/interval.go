package model

import "fmt"

// Interval is a half-open range [Start, End) of non-negative integers.
//
// Intervals are values. Two intervals are equal iff both bounds are equal, so
// == can be used directly.
type Interval struct {
	Start int64
	End   int64
}

// NewInterval returns [start, end). It fails if the interval would be empty or
// start below zero.
func NewInterval(start, end int64) (Interval, error) {
	if start < 0 || start >= end {
		return Interval{}, &InvalidIntervalError{Start: start, End: end}
	}
	return Interval{Start: start, End: end}, nil
}

// Len returns the number of values in the interval.
func (i Interval) Len() int64 {
	return i.End - i.Start
}

// Contains reports whether v is inside [Start, End).
func (i Interval) Contains(v int64) bool {
	return i.Start <= v && v < i.End
}

// Shift moves both bounds by delta.
func (i Interval) Shift(delta int64) Interval {
	return Interval{Start: i.Start + delta, End: i.End + delta}
}

// String formats the interval as "[start, end)".
func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}

// Overlap returns the intersection of a and b. Intervals that only touch at a
// boundary do not overlap.
func Overlap(a, b Interval) (Interval, bool) {
	start := max(a.Start, b.Start)
	end := min(a.End, b.End)
	if start >= end {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// Subtract returns the parts of a that are not covered by b. The result has 0,
// 1 or 2 fragments, in ascending order.
//
// The containment cases are checked before the partial overlap ones so that
// exactly one branch applies.
func Subtract(a, b Interval) []Interval {
	o, ok := Overlap(a, b)
	switch {
	case a == b:
		return nil
	case ok && o == a:
		// b contains a.
		return nil
	case ok && o == b:
		// a contains b.
		var ret []Interval
		if a.Start != b.Start {
			ret = append(ret, Interval{Start: a.Start, End: b.Start})
		}
		if b.End != a.End {
			ret = append(ret, Interval{Start: b.End, End: a.End})
		}
		return ret
	case a.Start < b.End && b.End < a.End && b.Start <= a.Start:
		return []Interval{{Start: b.End, End: a.End}}
	case a.Start < b.Start && b.Start < a.End && b.End >= a.End:
		return []Interval{{Start: a.Start, End: b.Start}}
	default:
		return []Interval{a}
	}
}

// TotalLen sums the lengths of all intervals. Overlapping intervals are counted
// once per interval.
func TotalLen(intervals []Interval) int64 {
	var n int64
	for _, i := range intervals {
		n += i.Len()
	}
	return n
}

// Hull returns the smallest interval covering all given intervals. It returns
// false when there is nothing to cover.
func Hull(intervals []Interval) (Interval, bool) {
	if len(intervals) == 0 {
		return Interval{}, false
	}
	ret := intervals[0]
	for i := 1; i < len(intervals); i++ {
		ret.Start = min(intervals[i].Start, ret.Start)
		ret.End = max(intervals[i].End, ret.End)
	}
	return ret, true
}

// FromSeedPairs reads seeds as (start, length) pairs and turns each pair into
// [start, start+length). A trailing value without a length is ignored.
func FromSeedPairs(seeds []int64) ([]Interval, error) {
	ret := make([]Interval, 0, len(seeds)/2)
	for i := 0; i+1 < len(seeds); i += 2 {
		iv, err := NewInterval(seeds[i], seeds[i]+seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed pair %d: %w", i/2, err)
		}
		ret = append(ret, iv)
	}
	return ret, nil
}

package mapping

import (
	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/emirpasic/gods/v2/sets/treeset"

	"github.com/liznear/almanac-ranges/model"
)

// ResultSet is the output of one stage application. Intervals may come in
// any order and, when stage rules overlap, may overlap each other.
type ResultSet []model.Interval

func compareIntervals(a, b model.Interval) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	case a.End < b.End:
		return -1
	case a.End > b.End:
		return 1
	default:
		return 0
	}
}

// Min returns the smallest value covered by the set.
func (rs ResultSet) Min() (int64, bool) {
	if len(rs) == 0 {
		return 0, false
	}
	ret := rs[0].Start
	for _, r := range rs[1:] {
		ret = min(ret, r.Start)
	}
	return ret, true
}

func (rs ResultSet) TotalLen() int64 {
	return model.TotalLen(rs)
}

// Sorted returns a copy ordered by start, then end. Duplicates are kept.
func (rs ResultSet) Sorted() ResultSet {
	counts := treemap.NewWith[model.Interval, int](compareIntervals)
	for _, r := range rs {
		n, _ := counts.Get(r)
		counts.Put(r, n+1)
	}

	ret := make(ResultSet, 0, len(rs))
	iter := counts.Iterator()
	for iter.Next() {
		for i := 0; i < iter.Value(); i++ {
			ret = append(ret, iter.Key())
		}
	}
	return ret
}

// Merge returns the sorted set with overlapping and adjacent intervals
// coalesced. It describes which values are covered, not how often.
func (rs ResultSet) Merge() ResultSet {
	var ret ResultSet
	for _, r := range treeset.NewWith[model.Interval](compareIntervals, rs...).Values() {
		if n := len(ret); n > 0 && r.Start <= ret[n-1].End {
			ret[n-1].End = max(ret[n-1].End, r.End)
			continue
		}
		ret = append(ret, r)
	}
	return ret
}

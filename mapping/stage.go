package mapping

import (
	"fmt"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
	"go.uber.org/multierr"

	"github.com/liznear/almanac-ranges/model"
)

// Stage is one named layer of translation rules, e.g. "seed-to-soil".
//
// Rules are kept in declaration order. When a value is covered by more than one
// rule, the first one wins. Input is expected to have disjoint sources, but
// this is not enforced; see Overlapping.
type Stage struct {
	name  string
	rules []model.Rule

	overlapping [][2]int
}

// NewStage builds a Stage from (destination, source, length) triples. Every
// malformed triple is reported, not only the first one.
func NewStage(name string, triples ...[3]int64) (*Stage, error) {
	var (
		rules []model.Rule
		errs  error
	)
	for i, t := range triples {
		r, err := model.NewRule(t[0], t[1], t[2])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		rules = append(rules, r)
	}
	if errs != nil {
		return nil, fmt.Errorf("stage %q: fail to build rules: %w", name, errs)
	}
	return NewStageFromRules(name, rules...), nil
}

// NewStageFromRules builds a Stage from rules that are already validated.
func NewStageFromRules(name string, rules ...model.Rule) *Stage {
	s := &Stage{
		name:  name,
		rules: append([]model.Rule(nil), rules...),
	}
	s.overlapping = findOverlapping(s.rules)
	return s
}

// ruleKey orders rules by one of their source bounds, then by declaration.
type ruleKey struct {
	at    int64
	index int
}

func compareRuleKeys(a, b ruleKey) int {
	switch {
	case a.at < b.at:
		return -1
	case a.at > b.at:
		return 1
	default:
		return a.index - b.index
	}
}

// findOverlapping sweeps the rules by source start while keeping every rule
// whose source is still open, ordered by end. Each rule that starts before an
// open source ends is paired with it. Pairs hold rule indexes in declaration
// order.
func findOverlapping(rules []model.Rule) [][2]int {
	byStart := treemap.NewWith[ruleKey, model.Rule](compareRuleKeys)
	for i, r := range rules {
		byStart.Put(ruleKey{r.SourceStart, i}, r)
	}

	var ret [][2]int
	open := treemap.NewWith[ruleKey, model.Rule](compareRuleKeys)
	iter := byStart.Iterator()
	for iter.Next() {
		k, r := iter.Key(), iter.Value()
		for {
			end, _, ok := open.Min()
			if !ok || end.at > k.at {
				break
			}
			open.Remove(end)
		}
		active := open.Iterator()
		for active.Next() {
			o := active.Key().index
			ret = append(ret, [2]int{min(o, k.index), max(o, k.index)})
		}
		open.Put(ruleKey{r.Source().End, k.index}, r)
	}
	return ret
}

func (s *Stage) Name() string {
	return s.name
}

// Rules returns a copy of the rules in declaration order.
func (s *Stage) Rules() []model.Rule {
	return append([]model.Rule(nil), s.rules...)
}

// Overlapping returns every pair of rule indexes whose sources overlap. For
// such pairs only the earlier rule applies to the shared values.
func (s *Stage) Overlapping() [][2]int {
	return s.overlapping
}

// Lookup maps a single value with the first rule containing it. Values outside
// every rule are returned unchanged.
func (s *Stage) Lookup(v int64) int64 {
	for _, r := range s.rules {
		if out, ok := r.Apply(v); ok {
			return out
		}
	}
	return v
}

// Transform maps a set of intervals through the stage.
//
// Intervals are processed from a worklist. For each interval, the first rule
// whose source overlaps it translates the overlapping part; whatever is left
// goes back to the worklist and is matched against all rules again. An
// interval no rule touches is passed through unchanged. The total length of
// the result always equals the total length of in.
func (s *Stage) Transform(in []model.Interval) ResultSet {
	work := linkedlistqueue.New[model.Interval]()
	for _, r := range in {
		work.Enqueue(r)
	}

	out := make(ResultSet, 0, len(in))
	for !work.Empty() {
		r, _ := work.Dequeue()
		mapped, rest, ok := s.split(r)
		if !ok {
			out = append(out, r)
			continue
		}
		out = append(out, mapped)
		for _, f := range rest {
			work.Enqueue(f)
		}
	}
	return out
}

// split applies the first rule overlapping r. It returns the translated
// overlap and the fragments of r the rule did not cover.
func (s *Stage) split(r model.Interval) (model.Interval, []model.Interval, bool) {
	for _, rule := range s.rules {
		inMap, ok := model.Overlap(r, rule.Source())
		if !ok {
			continue
		}
		return inMap.Shift(rule.Delta), model.Subtract(r, inMap), true
	}
	return model.Interval{}, nil, false
}

func (s *Stage) String() string {
	return fmt.Sprintf("%s(%d rules)", s.name, len(s.rules))
}

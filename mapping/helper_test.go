package mapping

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/liznear/almanac-ranges/model"
)

var sampleSeeds = []int64{79, 14, 55, 13}

var sampleTable = []struct {
	name    string
	triples [][3]int64
}{
	{"seed-to-soil", [][3]int64{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", [][3]int64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", [][3]int64{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", [][3]int64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", [][3]int64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", [][3]int64{{60, 56, 37}, {56, 93, 4}}},
}

func samplePipeline(t *testing.T) *Pipeline {
	t.Helper()
	var stages []*Stage
	for _, s := range sampleTable {
		stages = append(stages, mustStage(t, s.name, s.triples...))
	}
	p, err := NewPipeline(stages...)
	if err != nil {
		t.Fatalf("Fail to build sample pipeline: %v", err)
	}
	return p
}

func mustStage(t *testing.T, name string, triples ...[3]int64) *Stage {
	t.Helper()
	s, err := NewStage(name, triples...)
	if err != nil {
		t.Fatalf("Fail to build stage %q: %v", name, err)
	}
	return s
}

func iv(start, end int64) model.Interval {
	return model.Interval{Start: start, End: end}
}

// values lists every value covered by rs, with repetition, in ascending order.
func values(rs []model.Interval) []int64 {
	var ret []int64
	for _, r := range rs {
		for v := r.Start; v < r.End; v++ {
			ret = append(ret, v)
		}
	}
	slices.Sort(ret)
	return ret
}

// randomStage builds a stage with small rules that may overlap each other.
func randomStage(t *testing.T, rnd *rand.Rand, limit int64) *Stage {
	t.Helper()
	var triples [][3]int64
	for i := rnd.Intn(5); i > 0; i-- {
		triples = append(triples, [3]int64{rnd.Int63n(limit), rnd.Int63n(limit), 1 + rnd.Int63n(limit/2)})
	}
	return mustStage(t, "random", triples...)
}

func randomIntervals(rnd *rand.Rand, limit int64) []model.Interval {
	var ret []model.Interval
	for i := 1 + rnd.Intn(4); i > 0; i-- {
		start := rnd.Int63n(limit)
		ret = append(ret, iv(start, start+1+rnd.Int63n(limit/2)))
	}
	return ret
}

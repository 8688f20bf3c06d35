package mapping

import (
	"fmt"

	"github.com/liznear/almanac-ranges/model"
)

// Pipeline applies stages left to right. The first stage consumes the seed
// domain, each later stage consumes the previous stage's output.
type Pipeline struct {
	stages []*Stage
}

// StageObserver is called after each stage of a Transform with the stage's
// position, its input and its output.
type StageObserver func(i int, s *Stage, in, out ResultSet)

// NewPipeline returns a pipeline over stages in the given order. It fails if
// there are no stages or one of them is nil.
func NewPipeline(stages ...*Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, &StageOrderError{Reason: "no stages given"}
	}
	for i, s := range stages {
		if s == nil {
			return nil, &StageOrderError{Reason: fmt.Sprintf("stage %d is nil", i)}
		}
	}
	return &Pipeline{stages: append([]*Stage(nil), stages...)}, nil
}

// IdentityPipeline returns a pipeline with no stages. Every value comes out
// unchanged.
func IdentityPipeline() *Pipeline {
	return &Pipeline{}
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*Stage {
	return append([]*Stage(nil), p.stages...)
}

func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Lookup pushes a single value through every stage.
func (p *Pipeline) Lookup(v int64) int64 {
	for _, s := range p.stages {
		v = s.Lookup(v)
	}
	return v
}

// Transform pushes a set of intervals through every stage.
func (p *Pipeline) Transform(in []model.Interval, observers ...StageObserver) ResultSet {
	cur := append(ResultSet(nil), in...)
	for i, s := range p.stages {
		next := s.Transform(cur)
		for _, o := range observers {
			o(i, s, cur, next)
		}
		cur = next
	}
	return cur
}

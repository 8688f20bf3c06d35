package mapping

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/liznear/almanac-ranges/model"
	"github.com/liznear/almanac-ranges/utils"
)

// Mode selects how seeds are read.
type Mode string

const (
	// PointMode treats every seed as a single value.
	PointMode Mode = "point"
	// RangeMode reads seeds as (start, length) pairs.
	RangeMode Mode = "range"
)

// Solver pushes seeds through a pipeline and reduces the result to the
// smallest destination value.
type Solver struct {
	pipeline *Pipeline
	cfg      *Config
}

// NewSolver returns a solver for p, which must not be nil. Overlapping rules
// in any stage are logged as warnings.
func NewSolver(p *Pipeline, opts ...Option) *Solver {
	cfg := &Config{
		Logger:      zap.NewNop(),
		Parallelism: defaultParallelism,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for _, s := range p.stages {
		for _, pair := range s.Overlapping() {
			cfg.Logger.Warn("Stage has overlapping rules, the earlier one wins",
				zap.String("stage", s.Name()),
				zap.Stringer("first", s.rules[pair[0]]),
				zap.Stringer("second", s.rules[pair[1]]))
		}
	}
	return &Solver{pipeline: p, cfg: cfg}
}

// MinPoint maps every seed value on its own and returns the smallest result.
func (s *Solver) MinPoint(seeds []int64) (int64, error) {
	if len(seeds) == 0 {
		return 0, &EmptyInputError{Mode: PointMode}
	}
	ret := s.pipeline.Lookup(seeds[0])
	for _, seed := range seeds[1:] {
		ret = min(ret, s.pipeline.Lookup(seed))
	}
	s.cfg.Logger.Debug("Point mode solved", zap.Int("seeds", len(seeds)), zap.Int64("min", ret))
	return ret, nil
}

// MinSeedRanges reads seeds as (start, length) pairs and solves in range mode.
func (s *Solver) MinSeedRanges(seeds []int64) (int64, error) {
	in, err := model.FromSeedPairs(seeds)
	if err != nil {
		return 0, fmt.Errorf("solver: fail to pair seeds: %w", err)
	}
	return s.MinRange(in)
}

// MinRange returns the smallest value covered by the image of in.
func (s *Solver) MinRange(in []model.Interval) (int64, error) {
	out, err := s.Locations(in)
	if err != nil {
		return 0, err
	}
	ret, ok := out.Min()
	if !ok {
		return 0, &EmptyInputError{Mode: RangeMode}
	}
	s.cfg.Logger.Debug("Range mode solved", zap.Int("intervals", len(out)), zap.Int64("min", ret))
	return ret, nil
}

// Locations returns the image of in after every stage.
//
// With a parallelism above 1, each input interval goes through the pipeline
// on its own goroutine. Stages are read-only, so they are shared without
// locking. The result is the same multiset as a sequential run.
func (s *Solver) Locations(in []model.Interval) (ResultSet, error) {
	if len(in) == 0 {
		return nil, &EmptyInputError{Mode: RangeMode}
	}
	if s.cfg.Parallelism <= 1 || len(in) == 1 {
		return s.pipeline.Transform(in, s.observe), nil
	}

	parts := make([]ResultSet, len(in))
	rs := make([]utils.Runnable, len(in))
	for i, iv := range in {
		i, iv := i, iv
		rs[i] = func() error {
			parts[i] = s.pipeline.Transform([]model.Interval{iv}, s.observe)
			return nil
		}
	}
	if err := utils.RunParallel(s.cfg.Parallelism, rs...); err != nil {
		return nil, fmt.Errorf("solver: fail to run pipeline: %w", err)
	}

	var out ResultSet
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

func (s *Solver) observe(i int, st *Stage, in, out ResultSet) {
	if !s.cfg.Debug {
		return
	}
	s.cfg.Logger.Debug("Stage applied",
		zap.Int("index", i),
		zap.String("stage", st.Name()),
		zap.Int("in", len(in)),
		zap.Int("out", len(out)),
		zap.String("result", spew.Sdump(out)))
}

const defaultParallelism = 1

// Config controls how a Solver runs and reports.
type Config struct {
	Logger *zap.Logger

	// Debug dumps every intermediate result set into the debug log.
	Debug bool

	// Parallelism is the number of top-level intervals processed at the same
	// time in range mode.
	Parallelism int
}

// Option changes a Config field.
type Option func(*Config)

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithDebug turns on dumps of every intermediate result set.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithParallelism sets how many input intervals are solved at the same time.
// Values below 2 run sequentially.
func WithParallelism(n int) Option {
	return func(c *Config) {
		c.Parallelism = n
	}
}

package utils

import (
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

type Runnable func() error

func ToRunnable1[T1 any](f func(T1) error, a T1) Runnable {
	return func() error {
		return f(a)
	}
}

// Run runs rs in order and stops at the first error.
func Run(rs ...Runnable) error {
	for _, r := range rs {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}

// RunParallel runs rs on at most limit goroutines and waits for all of them.
// Unlike Run, every runnable is executed; the errors are combined. A limit
// below 1 is treated as 1.
func RunParallel(limit int, rs ...Runnable) error {
	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	errs := make([]error, len(rs))
	for i, r := range rs {
		i, r := i, r
		g.Go(func() error {
			errs[i] = r()
			return nil
		})
	}
	_ = g.Wait()
	return multierr.Combine(errs...)
}

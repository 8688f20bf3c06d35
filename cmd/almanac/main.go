// Command almanac prints the lowest location reachable from the seeds of an
// almanac file, reading seeds as single values, as ranges, or both.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/liznear/almanac-ranges/almanac"
	"github.com/liznear/almanac-ranges/mapping"
	"github.com/liznear/almanac-ranges/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("almanac", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagMode     string
		flagParallel int
		flagDebug    bool
	)
	fs.StringVar(&flagMode, "mode", "both", "how to read seeds: point, range or both")
	fs.IntVar(&flagParallel, "parallel", 1, "number of seed ranges solved at the same time")
	fs.BoolVar(&flagDebug, "debug", false, "log every intermediate result")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: almanac [-mode point|range|both] [-parallel N] [-debug] <input|->")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	modes, ok := parseModes(flagMode)
	if !ok {
		fmt.Fprintf(stderr, "almanac: unknown mode %q\n", flagMode)
		return 2
	}

	logger, err := newLogger(flagDebug)
	if err != nil {
		fmt.Fprintf(stderr, "almanac: fail to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	input := fs.Arg(0)
	a, err := load(input, stdin)
	if err != nil {
		logger.Error("Fail to load almanac", zap.String("input", input), zap.Error(err))
		return 1
	}
	p, err := a.Pipeline()
	if err != nil {
		logger.Error("Fail to build pipeline", zap.String("input", input), zap.Error(err))
		return 1
	}

	solver := mapping.NewSolver(p,
		mapping.WithLogger(logger),
		mapping.WithDebug(flagDebug),
		mapping.WithParallelism(flagParallel))
	solve := func(m mapping.Mode) error {
		var (
			v   int64
			err error
		)
		switch m {
		case mapping.PointMode:
			v, err = solver.MinPoint(a.Seeds)
		case mapping.RangeMode:
			v, err = solver.MinSeedRanges(a.Seeds)
		}
		if err != nil {
			return fmt.Errorf("%s mode: %w", m, err)
		}
		fmt.Fprintf(stdout, "%s: %d\n", m, v)
		return nil
	}
	var rs []utils.Runnable
	for _, m := range modes {
		rs = append(rs, utils.ToRunnable1(solve, m))
	}
	if err := utils.Run(rs...); err != nil {
		logger.Error("Fail to solve", zap.Error(err))
		return 1
	}
	return 0
}

func parseModes(s string) ([]mapping.Mode, bool) {
	switch s {
	case "point":
		return []mapping.Mode{mapping.PointMode}, true
	case "range":
		return []mapping.Mode{mapping.RangeMode}, true
	case "both":
		return []mapping.Mode{mapping.PointMode, mapping.RangeMode}, true
	default:
		return nil, false
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func load(input string, stdin io.Reader) (*almanac.Almanac, error) {
	if input == "-" {
		return almanac.Parse(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("fail to open input: %w", err)
	}
	defer f.Close()
	return almanac.Parse(f)
}

// Package almanac reads the seed almanac text format into the inputs of the
// mapping engine.
//
// The format is a "seeds:" line followed by blocks, each headed by
// "<name> map:" and holding one "destination source length" rule per line:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/liznear/almanac-ranges/mapping"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"

	// maxLineSize bounds a single input line. Seed lines can be long.
	maxLineSize = 16 << 20
)

// Almanac is a parsed input: the seed values and the stages in the order they
// were declared.
type Almanac struct {
	Seeds  []int64
	Stages []*mapping.Stage
}

// Pipeline returns the declared stages as a pipeline. An almanac without any
// map block yields a StageOrderError.
func (a *Almanac) Pipeline() (*mapping.Pipeline, error) {
	return mapping.NewPipeline(a.Stages...)
}

// ParseError reports the line an input problem was found on.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("almanac: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("almanac: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// block collects the rules of a map until the next header.
type block struct {
	name    string
	line    int
	triples [][3]int64
}

// Parse reads an almanac from r.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		ret     = &Almanac{}
		cur     *block
		lineNo  int
		sawSeed bool
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		st, err := mapping.NewStage(cur.name, cur.triples...)
		if err != nil {
			return &ParseError{Line: cur.line, Msg: "invalid map", Err: err}
		}
		ret.Stages = append(ret.Stages, st)
		cur = nil
		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case !sawSeed:
			seeds, ok := strings.CutPrefix(line, seedsPrefix)
			if !ok {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("want %q line, got %q", seedsPrefix, line)}
			}
			vs, err := parseInts(seeds)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "invalid seed", Err: err}
			}
			ret.Seeds = vs
			sawSeed = true
		case strings.HasSuffix(line, headerSuffix):
			if err := flush(); err != nil {
				return nil, err
			}
			cur = &block{name: strings.TrimSpace(strings.TrimSuffix(line, headerSuffix)), line: lineNo}
		default:
			if cur == nil {
				return nil, &ParseError{Line: lineNo, Msg: "rule outside of a map"}
			}
			vs, err := parseInts(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "invalid rule", Err: err}
			}
			if len(vs) != 3 {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("want 3 numbers in a rule, got %d", len(vs))}
			}
			cur.triples = append(cur.triples, [3]int64{vs[0], vs[1], vs[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("almanac: fail to read input: %w", err)
	}
	if !sawSeed {
		return nil, &ParseError{Line: lineNo, Msg: "missing seeds", Err: io.ErrUnexpectedEOF}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return ret, nil
}

var errNegative = errors.New("negative value")

func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	ret := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: %d", errNegative, v)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

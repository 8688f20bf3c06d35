package almanac

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liznear/almanac-ranges/mapping"
	"github.com/liznear/almanac-ranges/model"
)

func TestParse_Sample(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	require.NoError(t, err)
	defer f.Close()

	a, err := Parse(f)
	require.NoError(t, err)
	assert.Equal(t, []int64{79, 14, 55, 13}, a.Seeds)

	var names []string
	for _, s := range a.Stages {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"seed-to-soil",
		"soil-to-fertilizer",
		"fertilizer-to-water",
		"water-to-light",
		"light-to-temperature",
		"temperature-to-humidity",
		"humidity-to-location",
	}, names)
	assert.Equal(t, []model.Rule{
		{SourceStart: 98, SourceLength: 2, Delta: -48},
		{SourceStart: 50, SourceLength: 48, Delta: 2},
	}, a.Stages[0].Rules())

	p, err := a.Pipeline()
	require.NoError(t, err)
	s := mapping.NewSolver(p)

	point, err := s.MinPoint(a.Seeds)
	require.NoError(t, err)
	assert.Equal(t, int64(35), point)

	rng, err := s.MinSeedRanges(a.Seeds)
	require.NoError(t, err)
	assert.Equal(t, int64(46), rng)
}

func TestParse_EmptyMap(t *testing.T) {
	a, err := Parse(strings.NewReader("seeds: 1 2\n\nnothing map:\n"))
	require.NoError(t, err)
	require.Len(t, a.Stages, 1)
	assert.Empty(t, a.Stages[0].Rules())
}

func TestParse_LongSeedLine(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("seeds:")
	for sb.Len() < 200<<10 {
		sb.WriteString(" 1234567 89")
	}
	sb.WriteString("\n\na-to-b map:\n0 1 2\n")

	a, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Greater(t, len(a.Seeds), 30000)
	require.Len(t, a.Stages, 1)
}

func TestParse_NoMaps(t *testing.T) {
	a, err := Parse(strings.NewReader("seeds: 1 2\n"))
	require.NoError(t, err)

	_, err = a.Pipeline()
	serr := &mapping.StageOrderError{}
	assert.True(t, errors.As(err, &serr), "Got %v, want StageOrderError", err)
}

func TestParse_Errors(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "Empty", input: "", wantLine: 0},
		{name: "NoSeedsLine", input: "a-to-b map:\n1 2 3\n", wantLine: 1},
		{name: "BadSeed", input: "seeds: 1 x\n", wantLine: 1},
		{name: "NegativeSeed", input: "seeds: -1 2\n", wantLine: 1},
		{name: "RuleOutsideMap", input: "seeds: 1\n\n1 2 3\n", wantLine: 3},
		{name: "ShortRule", input: "seeds: 1\n\na-to-b map:\n1 2\n", wantLine: 4},
		{name: "BadRule", input: "seeds: 1\n\na-to-b map:\n1 2 z\n", wantLine: 4},
		{name: "ZeroLength", input: "seeds: 1\n\na-to-b map:\n1 2 3\n4 5 0\n", wantLine: 3},
		{name: "HeaderWithoutName", input: "seeds: 1\n\n map:\n", wantLine: 3},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			perr := &ParseError{}
			if !errors.As(err, &perr) {
				t.Fatalf("Got error %v, want ParseError", err)
			}
			if perr.Line != tc.wantLine {
				t.Errorf("Got line %d, want %d", perr.Line, tc.wantLine)
			}
		})
	}
}

func TestParse_ZeroLengthIsMalformedRule(t *testing.T) {
	_, err := Parse(strings.NewReader("seeds: 1\n\na-to-b map:\n4 5 0\n"))
	merr := &model.MalformedRuleError{}
	require.True(t, errors.As(err, &merr), "Got %v, want MalformedRuleError", err)
	assert.Equal(t, int64(0), merr.Length)
}

// Package day12 solves 2023 day 12, "Hot Springs".
package day12

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.expect.digital/aoc/internal/puzzle"
	"go.expect.digital/aoc/lru"
	"go.expect.digital/aoc/memo"
)

const (
	operational = '.'
	damaged     = '#'
	unknown     = '?'

	unfoldCopies = 5
	cacheSize    = 1 << 16
)

var (
	errMalformed = errors.New("want \"springs groups\"")
	errGroupSize = errors.New("groups must be positive")
)

// Record is one row of the condition report.
type Record struct {
	Springs string
	Groups  []int
}

// Unfold repeats the record copies times, joining springs with an unknown.
func (r Record) Unfold(copies int) Record {
	springs := make([]string, copies)
	groups := make([]int, 0, len(r.Groups)*copies)

	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}

	return Record{Springs: strings.Join(springs, string(unknown)), Groups: groups}
}

func (r Record) key() memo.Key {
	return memo.NewKeyBuilder().String(r.Springs).Ints(r.Groups).Key()
}

// Parse reads one record per line.
func Parse(lines []string) ([]Record, error) {
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}

	records := make([]Record, 0, len(lines))

	for i, line := range lines {
		springs, groups, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || strings.Trim(springs, ".#?") != "" {
			return nil, puzzle.NewParseError(i, line, errMalformed)
		}

		g, err := puzzle.Fields(i, groups, ",")
		if err != nil {
			return nil, err
		}

		if slices.ContainsFunc(g, func(v int) bool { return v < 1 }) {
			return nil, puzzle.NewParseError(i, line, errGroupSize)
		}

		records = append(records, Record{Springs: springs, Groups: g})
	}

	return records, nil
}

// Counter counts arrangements, remembering every sub-record it has seen.
type Counter struct {
	m *memo.Memo[Record, memo.Key, int]
}

func NewCounter() *Counter {
	c := new(Counter)
	c.m = memo.New(c.count, Record.key, lru.WithSize[memo.Key, int](cacheSize))

	return c
}

// Arrangements returns the number of ways the unknown springs can be filled
// in to match the damaged groups.
func (c *Counter) Arrangements(ctx context.Context, r Record) (int, error) {
	return c.m.Call(ctx, r)
}

func (c *Counter) count(ctx context.Context, r Record) (int, error) {
	if len(r.Groups) == 0 {
		if strings.ContainsRune(r.Springs, damaged) {
			return 0, nil
		}

		return 1, nil
	}

	if r.Springs == "" {
		return 0, nil
	}

	total := 0

	if r.Springs[0] != damaged {
		n, err := c.m.Call(ctx, Record{Springs: r.Springs[1:], Groups: r.Groups})
		if err != nil {
			return 0, err
		}

		total += n
	}

	if r.Springs[0] == operational {
		return total, nil
	}

	// A damaged group starts here: it must fit, and be followed by the end or a
	// spring that can be operational.
	g := r.Groups[0]

	switch {
	case g > len(r.Springs),
		strings.ContainsRune(r.Springs[:g], operational),
		g < len(r.Springs) && r.Springs[g] == damaged:
		return total, nil
	}

	rest := ""
	if g < len(r.Springs) {
		rest = r.Springs[g+1:]
	}

	n, err := c.m.Call(ctx, Record{Springs: rest, Groups: r.Groups[1:]})
	if err != nil {
		return 0, err
	}

	return total + n, nil
}

func sum(ctx context.Context, records []Record, copies int) (int, error) {
	c := NewCounter()
	total := 0

	for _, r := range records {
		n, err := c.Arrangements(ctx, r.Unfold(copies))
		if err != nil {
			return 0, err
		}

		total += n
	}

	return total, nil
}

func Run(ctx context.Context, lines []string) (puzzle.Result, error) {
	records, err := Parse(lines)
	if err != nil {
		return puzzle.Result{}, err
	}

	part1, err := sum(ctx, records, 1)
	if err != nil {
		return puzzle.Result{}, err
	}

	part2, err := sum(ctx, records, unfoldCopies)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.NewResult(part1, part2), nil
}

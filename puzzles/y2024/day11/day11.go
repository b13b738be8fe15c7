// Package day11 solves 2024 day 11, "Plutonian Pebbles".
package day11

import (
	"context"
	"errors"
	"fmt"

	"go.expect.digital/aoc/internal/puzzle"
	"go.expect.digital/aoc/lru"
	"go.expect.digital/aoc/memo"
)

const cacheSize = 1 << 18

var errNegative = errors.New("negative stone number")

type stone struct {
	number int
	blinks int
}

// Pebbles counts stones after blinking. Counts are remembered per stone
// number and blinks left, which are shared by many stones.
type Pebbles struct {
	m *memo.Memo[stone, stone, int]
}

func NewPebbles() *Pebbles {
	p := new(Pebbles)
	p.m = memo.New(p.count, memo.Identity[stone], lru.WithSize[stone, int](cacheSize))

	return p
}

// Count returns the number of stones after blinking blinks times.
func (p *Pebbles) Count(ctx context.Context, stones []int, blinks int) (int, error) {
	total := 0

	for _, n := range stones {
		if n < 0 {
			return 0, fmt.Errorf("count stone %d: %w", n, errNegative)
		}

		c, err := p.m.Call(ctx, stone{number: n, blinks: blinks})
		if err != nil {
			return 0, err
		}

		total += c
	}

	return total, nil
}

// Blink returns what a single stone turns into. n must not be negative.
func Blink(n int) []int {
	if n == 0 {
		return []int{1}
	}

	digits := 0
	for v := n; v > 0; v /= 10 {
		digits++
	}

	if digits%2 == 0 {
		split := 1
		for i := 0; i < digits/2; i++ {
			split *= 10
		}

		return []int{n / split, n % split}
	}

	return []int{n * 2024}
}

func (p *Pebbles) count(ctx context.Context, s stone) (int, error) {
	if s.blinks == 0 {
		return 1, nil
	}

	return p.Count(ctx, Blink(s.number), s.blinks-1)
}

func Run(ctx context.Context, lines []string) (puzzle.Result, error) {
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return puzzle.Result{}, err
	}

	stones, err := puzzle.Fields(0, line, " ")
	if err != nil {
		return puzzle.Result{}, err
	}

	for _, n := range stones {
		if n < 0 {
			return puzzle.Result{}, puzzle.NewParseError(0, line, fmt.Errorf("stone %d: %w", n, errNegative))
		}
	}

	p := NewPebbles()

	part1, err := p.Count(ctx, stones, 25)
	if err != nil {
		return puzzle.Result{}, err
	}

	part2, err := p.Count(ctx, stones, 75)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.NewResult(part1, part2), nil
}

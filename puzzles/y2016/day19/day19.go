// Package day19 solves 2016 day 19, "An Elephant Named Joseph".
package day19

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.expect.digital/aoc/internal/puzzle"
	"go.expect.digital/aoc/ring"
)

var errNoElves = errors.New("at least one elf is needed")

func circle(elves int) *ring.Sequence[int] {
	c := ring.New[int]()
	for elf := 1; elf <= elves; elf++ {
		c.Insert(elf)
	}

	return c
}

// StealLeft returns the elf that ends up with all the presents when every
// elf steals from the elf to their left.
func StealLeft(elves int) (int, error) {
	c := circle(elves)

	for c.Len() > 1 {
		if _, err := c.Delete(c.Head().Next()); err != nil {
			return 0, fmt.Errorf("%d elves left: %w", c.Len(), err)
		}

		c.Advance(ring.Forward, 1)
	}

	return c.Head().Value, nil
}

// StealAcross returns the winner when every elf steals from the elf
// directly across the circle, the left one of two when there are two.
//
// The victim is tracked with its own node. After a removal the next victim is
// the node after the removed one, or the one after that when the circle had
// an odd number of elves.
func StealAcross(elves int) (int, error) {
	c := circle(elves)

	victim := c.Head()
	for i := 0; i < elves/2; i++ {
		victim = victim.Next()
	}

	for c.Len() > 1 {
		n := c.Len()
		next := victim.Next()

		if _, err := c.Delete(victim); err != nil {
			return 0, fmt.Errorf("%d elves left: %w", n, err)
		}

		victim = next
		if n%2 == 1 {
			victim = victim.Next()
		}

		c.Advance(ring.Forward, 1)
	}

	return c.Head().Value, nil
}

func Run(_ context.Context, lines []string) (puzzle.Result, error) {
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return puzzle.Result{}, err
	}

	elves, err := strconv.Atoi(line)
	if err != nil {
		return puzzle.Result{}, puzzle.NewParseError(0, line, err)
	}

	if elves < 1 {
		return puzzle.Result{}, puzzle.NewParseError(0, line, errNoElves)
	}

	part1, err := StealLeft(elves)
	if err != nil {
		return puzzle.Result{}, err
	}

	part2, err := StealAcross(elves)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.NewResult(part1, part2), nil
}

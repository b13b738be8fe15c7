// Package day09 solves 2018 day 9, "Marble Mania".
package day09

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"go.expect.digital/aoc/internal/puzzle"
	"go.expect.digital/aoc/ring"
)

var (
	errMalformed = errors.New("want \"N players; last marble is worth M points\"")
	errNoPlayers = errors.New("at least one player is needed")

	gameRx = regexp.MustCompile(`^(\d+) players; last marble is worth (\d+) points$`)
)

// Game describes one round of marbles.
type Game struct {
	Players int
	Last    int
}

// Parse reads the game from the puzzle input.
func Parse(lines []string) (Game, error) {
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return Game{}, err
	}

	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return Game{}, puzzle.NewParseError(0, line, errMalformed)
	}

	players, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, puzzle.NewParseError(0, line, err)
	}

	last, err := strconv.Atoi(m[2])
	if err != nil {
		return Game{}, puzzle.NewParseError(0, line, err)
	}

	if players < 1 {
		return Game{}, puzzle.NewParseError(0, line, errNoPlayers)
	}

	return Game{Players: players, Last: last}, nil
}

// HighScore plays the game and returns the winning score.
//
// The head of the circle is the current marble. A new marble goes between
// the marbles one and two clockwise of it, unless it is a multiple of 23: then
// it is kept, and so is the marble seven counter-clockwise, and the marble
// clockwise of the removed one becomes current.
func HighScore(g Game) (int, error) {
	scores := make([]int, g.Players)

	circle := ring.New[int]()
	circle.Insert(0)

	for marble := 1; marble <= g.Last; marble++ {
		if marble%23 != 0 {
			circle.Advance(ring.Forward, 2)
			circle.Insert(marble)
			circle.Advance(ring.Backward, 1)

			continue
		}

		circle.Advance(ring.Backward, 7)

		removed, err := circle.Delete(circle.Head())
		if err != nil {
			return 0, fmt.Errorf("marble %d: %w", marble, err)
		}

		scores[(marble-1)%g.Players] += marble + removed
	}

	high := 0
	for _, s := range scores {
		high = max(high, s)
	}

	return high, nil
}

func Run(_ context.Context, lines []string) (puzzle.Result, error) {
	g, err := Parse(lines)
	if err != nil {
		return puzzle.Result{}, err
	}

	part1, err := HighScore(g)
	if err != nil {
		return puzzle.Result{}, err
	}

	g.Last *= 100

	part2, err := HighScore(g)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.NewResult(part1, part2), nil
}

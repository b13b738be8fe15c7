package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.expect.digital/aoc/internal/puzzle"
	"go.expect.digital/aoc/puzzles/y2016/day19"
	"go.expect.digital/aoc/puzzles/y2017/day10"
	"go.expect.digital/aoc/puzzles/y2018/day09"
	"go.expect.digital/aoc/puzzles/y2022/day20"
	"go.expect.digital/aoc/puzzles/y2023/day12"
	"go.expect.digital/aoc/puzzles/y2024/day11"
)

var errUnknownPuzzle = errors.New("unknown puzzle")

// puzzles lists every solution, oldest first.
var puzzles = []puzzle.Puzzle{
	{Year: 2016, Day: 19, Title: "An Elephant Named Joseph", Solve: day19.Run},
	{Year: 2017, Day: 10, Title: "Knot Hash", Solve: day10.Run},
	{Year: 2018, Day: 9, Title: "Marble Mania", Solve: day09.Run},
	{Year: 2022, Day: 20, Title: "Grove Positioning System", Solve: day20.Run},
	{Year: 2023, Day: 12, Title: "Hot Springs", Solve: day12.Run},
	{Year: 2024, Day: 11, Title: "Plutonian Pebbles", Solve: day11.Run},
}

// find looks a puzzle up by "year/day". The day may or may not be zero padded.
func find(all []puzzle.Puzzle, id string) (puzzle.Puzzle, error) {
	y, d, ok := strings.Cut(id, "/")
	if !ok {
		return puzzle.Puzzle{}, fmt.Errorf("%w: %q, want year/day", errUnknownPuzzle, id)
	}

	year, errY := strconv.Atoi(y)
	day, errD := strconv.Atoi(d)

	if errY != nil || errD != nil {
		return puzzle.Puzzle{}, fmt.Errorf("%w: %q, want year/day", errUnknownPuzzle, id)
	}

	for _, p := range all {
		if p.Year == year && p.Day == day {
			return p, nil
		}
	}

	return puzzle.Puzzle{}, fmt.Errorf("%w: %s", errUnknownPuzzle, id)
}

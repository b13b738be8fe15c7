// Package day20 solves 2022 day 20, "Grove Positioning System".
package day20

import (
	"context"
	"fmt"

	"go.expect.digital/aoc/internal/puzzle"
	"go.expect.digital/aoc/ring"
)

const decryptionKey = 811589153

// Mix moves every number of the file by its own value, in the original
// order, rounds times, and returns the mixed sequence.
func Mix(file []int, key, rounds int) (*ring.Sequence[int], error) {
	seq := ring.New[int]()

	nodes := make([]*ring.Node[int], 0, len(file))
	for _, v := range file {
		nodes = append(nodes, seq.Insert(v*key))
	}

	for r := 0; r < rounds; r++ {
		for _, node := range nodes {
			if err := seq.Move(node, node.Value); err != nil {
				return nil, fmt.Errorf("mix round %d: %w", r+1, err)
			}
		}
	}

	return seq, nil
}

// Coordinates sums the numbers 1000, 2000 and 3000 after the zero.
func Coordinates(seq *ring.Sequence[int]) (int, error) {
	isZero := func(v int) bool { return v == 0 }
	sum := 0

	for _, offset := range []int{1000, 2000, 3000} {
		v, err := seq.ValueAt(isZero, offset)
		if err != nil {
			return 0, fmt.Errorf("grove coordinate %d: %w", offset, err)
		}

		sum += v
	}

	return sum, nil
}

func decrypt(file []int, key, rounds int) (int, error) {
	seq, err := Mix(file, key, rounds)
	if err != nil {
		return 0, err
	}

	return Coordinates(seq)
}

func Run(_ context.Context, lines []string) (puzzle.Result, error) {
	file, err := puzzle.Ints(lines)
	if err != nil {
		return puzzle.Result{}, err
	}

	part1, err := decrypt(file, 1, 1)
	if err != nil {
		return puzzle.Result{}, err
	}

	part2, err := decrypt(file, decryptionKey, 10)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.NewResult(part1, part2), nil
}

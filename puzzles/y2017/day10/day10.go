// Package day10 solves 2017 day 10, "Knot Hash".
package day10

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"go.expect.digital/aoc/internal/puzzle"
	"go.expect.digital/aoc/ring"
)

const (
	listSize   = 256
	hashRounds = 64
	blockSize  = 16
)

var (
	lengthSuffix = []int{17, 31, 73, 47, 23}

	errLength   = errors.New("length does not fit the list")
	errTooSmall = errors.New("need at least two marks")
)

// Knot is a circle of marks being twisted. The head is the current position.
type Knot struct {
	marks *ring.Sequence[int]
	first *ring.Node[int]
	skip  int
	buf   []*ring.Node[int]
}

// NewKnot returns a knot of the marks 0 to size-1.
func NewKnot(size int) *Knot {
	k := &Knot{marks: ring.New[int]()}

	for i := 0; i < size; i++ {
		k.marks.Insert(i)
	}

	k.first = k.marks.Head()

	return k
}

// Twist reverses length marks starting at the current position, then moves
// forward by length plus the skip size, which grows by one.
//
// Only the values are swapped. The nodes stay where they are, so the node of
// position 0 keeps being position 0.
func (k *Knot) Twist(length int) error {
	if length < 0 || length > k.marks.Len() {
		return fmt.Errorf("twist %d of %d: %w", length, k.marks.Len(), errLength)
	}

	k.buf = k.buf[:0]

	for i, e := 0, k.marks.Head(); i < length; i, e = i+1, e.Next() {
		k.buf = append(k.buf, e)
	}

	for i, j := 0, len(k.buf)-1; i < j; i, j = i+1, j-1 {
		k.buf[i].Value, k.buf[j].Value = k.buf[j].Value, k.buf[i].Value
	}

	k.marks.Advance(ring.Forward, length+k.skip)
	k.skip++

	return nil
}

// Marks returns the marks starting at position 0.
func (k *Knot) Marks() []int {
	marks := make([]int, 0, k.marks.Len())

	for i, e := 0, k.first; i < k.marks.Len(); i, e = i+1, e.Next() {
		marks = append(marks, e.Value)
	}

	return marks
}

// Check returns the product of the first two marks after a single round.
func Check(size int, lengths []int) (int, error) {
	if size < 2 {
		return 0, fmt.Errorf("check %d marks: %w", size, errTooSmall)
	}

	k := NewKnot(size)

	for _, l := range lengths {
		if err := k.Twist(l); err != nil {
			return 0, err
		}
	}

	marks := k.Marks()

	return marks[0] * marks[1], nil
}

// Hash returns the knot hash of input as hex.
func Hash(input string) (string, error) {
	lengths := make([]int, 0, len(input)+len(lengthSuffix))
	for i := 0; i < len(input); i++ {
		lengths = append(lengths, int(input[i]))
	}

	lengths = append(lengths, lengthSuffix...)

	k := NewKnot(listSize)

	for r := 0; r < hashRounds; r++ {
		for _, l := range lengths {
			if err := k.Twist(l); err != nil {
				return "", fmt.Errorf("round %d: %w", r+1, err)
			}
		}
	}

	sparse := k.Marks()
	dense := make([]byte, 0, listSize/blockSize)

	for i := 0; i < len(sparse); i += blockSize {
		var b int
		for _, v := range sparse[i : i+blockSize] {
			b ^= v
		}

		dense = append(dense, byte(b))
	}

	return hex.EncodeToString(dense), nil
}

func Run(_ context.Context, lines []string) (puzzle.Result, error) {
	line, err := puzzle.FirstLine(lines)
	if err != nil {
		return puzzle.Result{}, err
	}

	lengths, err := puzzle.Fields(0, line, ",")
	if err != nil {
		return puzzle.Result{}, err
	}

	part1, err := Check(listSize, lengths)
	if err != nil {
		return puzzle.Result{}, err
	}

	part2, err := Hash(line)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.NewResult(part1, part2), nil
}

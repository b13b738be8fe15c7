package day12

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.expect.digital/aoc/internal/puzzle"
)

var example = []string{
	"???.### 1,1,3",
	".??..??...?##. 1,1,3",
	"?#?#?#?#?#?#?#? 1,3,1,6",
	"????.#...#... 4,1,1",
	"????.######..#####. 1,6,5",
	"?###???????? 3,2,1",
}

func TestArrangements(t *testing.T) {
	t.Parallel()

	records, err := Parse(example)
	require.NoError(t, err)

	folded := []int{1, 4, 1, 1, 4, 10}
	unfolded := []int{1, 16384, 1, 16, 2500, 506250}

	c := NewCounter()

	for i, r := range records {
		n, err := c.Arrangements(context.Background(), r)
		require.NoError(t, err)
		assert.Equal(t, folded[i], n, example[i])

		n, err = c.Arrangements(context.Background(), r.Unfold(unfoldCopies))
		require.NoError(t, err)
		assert.Equal(t, unfolded[i], n, example[i])
	}
}

func TestArrangementsEdges(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	ctx := context.Background()

	for _, test := range []struct {
		record Record
		want   int
	}{
		{Record{Springs: "", Groups: nil}, 1},
		{Record{Springs: "...", Groups: nil}, 1},
		{Record{Springs: ".#.", Groups: nil}, 0},
		{Record{Springs: "", Groups: []int{1}}, 0},
		{Record{Springs: "##", Groups: []int{1}}, 0},
		{Record{Springs: "???", Groups: []int{1}}, 3},
		{Record{Springs: "???", Groups: []int{1, 1}}, 1},
		{Record{Springs: "#?#", Groups: []int{3}}, 1},
	} {
		n, err := c.Arrangements(ctx, test.record)
		require.NoError(t, err)
		assert.Equal(t, test.want, n, "%+v", test.record)
	}
}

func TestUnfold(t *testing.T) {
	t.Parallel()

	r := Record{Springs: ".#", Groups: []int{1}}.Unfold(5)
	assert.Equal(t, ".#?.#?.#?.#?.#", r.Springs)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, r.Groups)
}

func TestRun(t *testing.T) {
	t.Parallel()

	res, err := Run(context.Background(), example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Result{Part1: "21", Part2: "525152"}, res)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, lines := range [][]string{
		{"???.###"},
		{"???.### 1,x"},
		{"???.### 1,0"},
		{"??a.### 1,1"},
	} {
		_, err := Parse(lines)

		var perr *puzzle.ParseError

		require.ErrorAs(t, err, &perr, lines[0])
		assert.Equal(t, 1, perr.Line)
	}

	_, err := Parse(nil)
	require.ErrorIs(t, err, puzzle.ErrEmptyInput)
}

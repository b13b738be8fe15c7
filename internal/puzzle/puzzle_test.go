package puzzle

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	lines, err := ReadLines(strings.NewReader("1\r\n2\n\n3\n\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "", "3"}, lines)

	lines, err = ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestInts(t *testing.T) {
	t.Parallel()

	values, err := Ints([]string{"1", " -2", "3 "})
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3}, values)

	_, err = Ints(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Ints([]string{"1", "two", "3"})

	var perr *ParseError

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "two", perr.Text)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.EqualError(t, err, `parse line 2 "two": strconv.Atoi: parsing "two": invalid syntax`)
}

func TestFields(t *testing.T) {
	t.Parallel()

	values, err := Fields(0, "3, 4,1,5", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 1, 5}, values)

	values, err = Fields(0, "125 17", " ")
	require.NoError(t, err)
	assert.Equal(t, []int{125, 17}, values)

	_, err = Fields(4, "1,x", ",")

	var perr *ParseError

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Line)
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	line, err := FirstLine([]string{" 3017957 ", "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "3017957", line)

	_, err = FirstLine([]string{"  "})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestPuzzleID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2018/09", Puzzle{Year: 2018, Day: 9}.ID())
	assert.Equal(t, "2022/20", Puzzle{Year: 2022, Day: 20}.ID())
}

func TestRunner(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRunner(zap.New(core))

	p := Puzzle{Year: 2024, Day: 1, Title: "Sum", Solve: func(_ context.Context, lines []string) (Result, error) {
		values, err := Ints(lines)
		if err != nil {
			return Result{}, err
		}

		sum := 0
		for _, v := range values {
			sum += v
		}

		return NewResult(sum, len(values)), nil
	}}

	res, err := r.Run(context.Background(), p, []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, Result{Part1: "6", Part2: "3"}, res)

	solved := logs.FilterMessage("solved").All()
	require.Len(t, solved, 1)
	assert.Equal(t, "2024/01", solved[0].ContextMap()["puzzle"])
	assert.Equal(t, "6", solved[0].ContextMap()["part1"])

	_, err = r.Run(context.Background(), p, []string{"x"})

	var perr *ParseError

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, logs.FilterMessage("failed").Len())
}

func TestRunnerPanics(t *testing.T) {
	t.Parallel()

	r := NewRunner(nil)

	p := Puzzle{Year: 2018, Day: 20, Solve: func(context.Context, []string) (Result, error) {
		panic("unfinished")
	}}

	_, err := r.Run(context.Background(), p, nil)
	assert.EqualError(t, err, "solve 2018/20: unfinished")
}

func TestRunnerCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false

	p := Puzzle{Year: 2016, Day: 19, Solve: func(context.Context, []string) (Result, error) {
		called = true

		return Result{}, nil
	}}

	_, err := NewRunner(nil).Run(ctx, p, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, called)
}

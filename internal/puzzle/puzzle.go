// Package puzzle holds what every solution shares: the result record, the
// solution signature, input parsing helpers and a runner that logs.
package puzzle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrEmptyInput = errors.New("empty input")

// Result holds the answers to both parts of a puzzle.
type Result struct {
	Part1 string
	Part2 string
}

// NewResult formats both answers with their default format.
func NewResult(part1, part2 any) Result {
	return Result{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

// Func solves a puzzle for the given input lines.
type Func func(ctx context.Context, lines []string) (Result, error)

// Puzzle is a registered solution.
type Puzzle struct {
	Year  int
	Day   int
	Title string
	Solve Func
}

// ID returns the puzzle identifier, e.g. "2018/09".
func (p Puzzle) ID() string {
	return fmt.Sprintf("%d/%02d", p.Year, p.Day)
}

// ParseError reports an input line that could not be parsed.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError returns a ParseError for the line at the 0-based index i.
func NewParseError(i int, text string, err error) *ParseError {
	return &ParseError{Line: i + 1, Text: text, Err: err}
}

// ReadLines reads r fully and splits it into lines. Trailing empty lines are
// dropped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// FirstLine returns the only meaningful line of a single line input.
func FirstLine(lines []string) (string, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return "", ErrEmptyInput
	}

	return strings.TrimSpace(lines[0]), nil
}

// Ints parses every line as a single integer.
func Ints(lines []string) ([]int, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	values := make([]int, 0, len(lines))

	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, NewParseError(i, line, err)
		}

		values = append(values, v)
	}

	return values, nil
}

// Fields parses the integers on line i separated by any of seps.
func Fields(i int, line, seps string) ([]int, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})

	values := make([]int, 0, len(parts))

	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, NewParseError(i, line, err)
		}

		values = append(values, v)
	}

	return values, nil
}

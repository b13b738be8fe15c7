package puzzle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Runner runs puzzles and logs how they went.
type Runner struct {
	log *zap.Logger
}

func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{log: log}
}

// Run solves p for lines. A panic inside the solution is returned as an error.
func (r *Runner) Run(ctx context.Context, p Puzzle, lines []string) (res Result, err error) {
	log := r.log.With(zap.String("puzzle", p.ID()), zap.String("title", p.Title))
	start := time.Now()

	log.Debug("solving", zap.Int("lines", len(lines)))

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("solve %s: %v", p.ID(), rec) //nolint:goerr113
		}

		if err != nil {
			log.Error("failed", zap.Duration("took", time.Since(start)), zap.Error(err))

			return
		}

		log.Info("solved",
			zap.Duration("took", time.Since(start)),
			zap.String("part1", res.Part1),
			zap.String("part2", res.Part2),
		)
	}()

	if err = ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("solve %s: %w", p.ID(), err)
	}

	res, err = p.Solve(ctx, lines)
	if err != nil {
		return Result{}, fmt.Errorf("solve %s: %w", p.ID(), err)
	}

	return res, nil
}

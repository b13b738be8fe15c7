package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.expect.digital/aoc/internal/config"
	"go.expect.digital/aoc/internal/puzzle"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

type app struct {
	puzzles     []puzzle.Puzzle
	configPath  string
	verbose     bool
	cfg         *config.Config
	logger      *zap.Logger
	buildLogger func(zap.Config) (*zap.Logger, error)
}

func newApp(all []puzzle.Puzzle) *app {
	return &app{
		puzzles: all,
		logger:  zap.NewNop(),
		buildLogger: func(cfg zap.Config) (*zap.Logger, error) {
			return cfg.Build()
		},
	}
}

// execute runs the command line and flushes the logger afterwards, also when
// the command fails.
func (a *app) execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer func() {
		_ = a.logger.Sync()
	}()

	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code solutions",
		Long: `Solves Advent of Code puzzles from their input files.

Inputs are read from <input_dir>/<year>/<day>.txt, where input_dir comes from
aoc.yaml or AOC_INPUT_DIR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	var input string

	runCmd := &cobra.Command{
		Use:     "run year/day",
		Short:   "Solve a single puzzle",
		Example: "  aoc run 2018/09\n  aoc run 2022/20 --input sample.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := find(a.puzzles, args[0])
			if err != nil {
				return err
			}

			path := input
			if path == "" {
				path = a.cfg.InputPath(p.Year, p.Day)
			}

			res, err := a.solve(cmd.Context(), p, path)
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), p, res)

			return nil
		},
	}

	runCmd.Flags().StringVarP(&input, "input", "i", "", "input file instead of the one in input_dir")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every puzzle that has an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveAll(cmd.Context(), cmd.OutOrStdout())
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the solved puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range a.puzzles {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID(), p.Title)
			}

			return nil
		},
	}

	root.AddCommand(runCmd, allCmd, listCmd)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = cfg.Log.Encoding
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())

	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := a.buildLogger(zcfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

func (a *app) solve(ctx context.Context, p puzzle.Puzzle, path string) (puzzle.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("open input of %s: %w", p.ID(), err)
	}
	defer f.Close()

	lines, err := puzzle.ReadLines(f)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("input of %s: %w", p.ID(), err)
	}

	return puzzle.NewRunner(a.logger).Run(ctx, p, lines)
}

// solveAll solves the puzzles concurrently and prints them in order.
// Puzzles without an input file are skipped.
func (a *app) solveAll(ctx context.Context, w io.Writer) error {
	results := make([]*puzzle.Result, len(a.puzzles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range a.puzzles {
		i, p := i, p
		path := a.cfg.InputPath(p.Year, p.Day)

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			a.logger.Info("no input, skipping", zap.String("puzzle", p.ID()), zap.String("path", path))

			continue
		}

		g.Go(func() error {
			res, err := a.solve(ctx, p, path)
			if err != nil {
				return err
			}

			results[i] = &res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, res := range results {
		if res != nil {
			printResult(w, a.puzzles[i], *res)
		}
	}

	return nil
}

func printResult(w io.Writer, p puzzle.Puzzle, res puzzle.Result) {
	fmt.Fprintf(w, "%s %s\npart 1: %s\npart 2: %s\n", p.ID(), p.Title, res.Part1, res.Part2)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newApp(puzzles).execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

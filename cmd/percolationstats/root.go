package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/paulrodriguez/percolation/montecarlo"
)

// app holds the process-level collaborators of the command so tests can
// replace them.
type app struct {
	stdout    io.Writer
	newLogger func(verbose bool) (*zap.Logger, error)
	now       func() time.Time
	newRunID  func() string

	logger *zap.Logger
}

// newApp returns an app wired to the real logger, clock and id generator.
func newApp(stdout io.Writer) *app {
	return &app{
		stdout:    stdout,
		newLogger: newLogger,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}
}

// newLogger builds a production zap logger: warnings and above by default,
// everything with verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// newRootCommand creates the percolationstats command.
func newRootCommand(a *app) *cobra.Command {
	cfg := DefaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "percolationstats N T",
		Short: "Estimate the percolation threshold of an N×N grid",
		Long: `Runs T independent percolation experiments on an N×N grid. Each experiment
opens uniformly random sites until the top row is connected to the bottom row
and records the fraction of open sites. Prints the mean, sample standard
deviation and a confidence interval of the recorded fractions.`,
		Example:       "  percolationstats 200 100\n  percolationstats 200 100 --seed 42 --format json",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError("expected 2 arguments (N T)", fmt.Errorf("got %d", len(args)))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := LoadConfig(configPath)
				if err != nil {
					return &ExitError{Code: ExitFailure, Message: "load config", Err: err}
				}
				mergeConfig(cmd, &cfg, fileCfg)
			}
			if err := cfg.Validate(); err != nil {
				return usageError("invalid flags", err)
			}

			logger, err := a.newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, cfg)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError("invalid flags", err)
	})

	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks a time-based seed)")
	cmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format (text|json)")
	cmd.Flags().Float64Var(&cfg.Confidence, "confidence", cfg.Confidence, "confidence level of the reported interval")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log every trial")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")

	return cmd
}

// mergeConfig copies values from fileCfg into cfg for every flag the user
// did not set explicitly.
func mergeConfig(cmd *cobra.Command, cfg *Config, fileCfg Config) {
	flags := cmd.Flags()
	if !flags.Changed("seed") {
		cfg.Seed = fileCfg.Seed
	}
	if !flags.Changed("format") {
		cfg.Format = fileCfg.Format
	}
	if !flags.Changed("confidence") {
		cfg.Confidence = fileCfg.Confidence
	}
	if !flags.Changed("verbose") {
		cfg.Verbose = fileCfg.Verbose
	}
}

// run parses N and T, performs the experiments and prints the report.
func (a *app) run(cmd *cobra.Command, args []string, cfg Config) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError("grid size N must be an integer", err)
	}
	trials, err := strconv.Atoi(args[1])
	if err != nil {
		return usageError("trial count T must be an integer", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = a.now().UnixNano()
	}
	runID := a.newRunID()
	logger := a.logger.With(zap.String("run_id", runID))
	logger.Info("starting percolation run",
		zap.Int("side", n),
		zap.Int("trials", trials),
		zap.Int64("seed", seed),
	)

	st, err := montecarlo.Run(cmd.Context(), n, trials,
		montecarlo.WithSeed(seed),
		montecarlo.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, montecarlo.ErrInvalidArgument) {
			return usageError("invalid arguments", err)
		}
		return &ExitError{Code: ExitFailure, Message: "run failed", Err: err}
	}

	report, err := newReport(st, seed, cfg.Confidence)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: "build report", Err: err}
	}
	return writeReport(a.stdout, cfg.Format, runID, report)
}

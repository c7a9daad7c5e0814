// Package main is the entry point for the radixdemo binary.
// It shuffles a set of integers, radix sorts it and checks the result
// against an independently sorted reference.
package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/radixsort/internal/config"
	"github.com/katalvlaran/radixsort/internal/logging"
	"github.com/katalvlaran/radixsort/radix"
	"github.com/katalvlaran/radixsort/sample"
)

// errMismatch is returned when the sorted result differs from the reference.
var errMismatch = errors.New("sorted result does not match the reference")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for radixdemo.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "radixdemo [values...]",
		Short: "Demonstrate LSD radix sort",
		Long: `Shuffle a set of integers, sort it with LSD radix sort and compare the
result with an independently sorted reference.

Without values the built-in demo set is used.

Example:
  radixdemo --seed 42
  radixdemo --trace -l debug -- 170 45 75 90 802 24 2 66`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runDemo,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringP("config", "c", "", "Path to configuration file (YAML)")
	rootCmd.Flags().Int64("seed", 0, "Shuffle seed (0 uses the fixed default)")
	rootCmd.Flags().Int("base", config.DefaultBase, "Sort radix (2-65536)")
	rootCmd.Flags().String("negatives", config.DefaultNegatives, "Negative value policy (reject, split)")
	rootCmd.Flags().StringP("log-level", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("trace", false, "Log every sort pass at debug level")

	return rootCmd
}

// buildConfig loads the config file if given, then applies changed flags and
// positional values on top of it.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg := config.Default()
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetInt64("seed"); err != nil {
			return nil, fmt.Errorf("failed to get seed flag: %w", err)
		}
	}
	if flags.Changed("base") {
		if cfg.Base, err = flags.GetInt("base"); err != nil {
			return nil, fmt.Errorf("failed to get base flag: %w", err)
		}
	}
	if flags.Changed("negatives") {
		if cfg.Negatives, err = flags.GetString("negatives"); err != nil {
			return nil, fmt.Errorf("failed to get negatives flag: %w", err)
		}
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return nil, fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}
	if flags.Changed("trace") {
		if cfg.Trace, err = flags.GetBool("trace"); err != nil {
			return nil, fmt.Errorf("failed to get trace flag: %w", err)
		}
	}

	if len(args) > 0 {
		if cfg.Values, err = parseValues(args); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseValues converts positional arguments into integers.
func parseValues(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}

	return values, nil
}

// runDemo is the main entry point for the root command.
func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if cfg.Trace {
		opts = append(opts, radix.WithOnPass(logging.PassTracer(logger)))
	}

	want := slices.Clone(cfg.Values)
	slices.Sort(want)
	a := sample.Shuffled(cfg.Values, cfg.Seed)

	logger.Info("sorting",
		zap.Int("len", len(a)),
		zap.Int64("seed", cfg.Seed),
		zap.Int("base", cfg.Base),
		zap.String("negatives", cfg.Negatives),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Before sorting: %v\n", a)

	if err := radix.Sort(a, opts...); err != nil {
		logger.Error("sort failed", zap.Error(err))
		return err
	}

	fmt.Fprintf(out, "After sorting:  %v\n", a)

	ok := sample.Verify(a, want)
	if !ok {
		fmt.Fprintf(out, "%s sort result differs from the reference %v\n", sample.Mark(false), want)
		return errMismatch
	}
	fmt.Fprintf(out, "%s sorted correctly\n", sample.Mark(true))

	return nil
}

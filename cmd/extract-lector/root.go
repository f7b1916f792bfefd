// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/lectorx"
	"github.com/ik5/lectorx/align"
	"github.com/ik5/lectorx/internal/config"
	"github.com/ik5/lectorx/internal/logging"
	"github.com/ik5/lectorx/mix"
)

func newRootCommand() *cobra.Command {
	cfg := config.Load()
	var fixedLag int

	rootCmd := &cobra.Command{
		Use:   "extract-lector <original> <mixed> <output_diff> <output_sum>",
		Short: "Recover a voice-over track from an original and a mixed recording",
		Long: `extract-lector aligns the original recording onto the mix, estimates
their relative gain and writes the difference (the voice-over estimate) and
the half-sum of both tracks.

A correlation lag L means the mix holds the original delayed by L samples;
--align shift consumes it directly. --align skip drops the first L samples of
the original, which matches a manual --lag given as "original content is L
samples later".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(4)(cmd, args); err != nil {
				cmd.PrintErrln(cmd.UsageString())
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lag") {
				cfg.FixedLag = &fixedLag
			}
			return run(cmd, cfg, args)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&cfg.MaxLag, "max-lag", cfg.MaxLag, "Lag search window in samples (+/-)")
	flags.IntVar(&fixedLag, "lag", 0, "Use this lag in samples instead of searching")
	flags.StringVar(&cfg.Scoring, "scoring", cfg.Scoring, "Correlation scoring: raw or normalized")
	flags.StringVar(&cfg.Method, "method", cfg.Method, "Correlation method: direct or fft")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines for the direct search")
	flags.StringVar(&cfg.Align, "align", cfg.Align, "Alignment: skip or shift")
	flags.StringVar(&cfg.Policy, "policy", cfg.Policy, "Difference policy: halving or compensated")
	flags.IntVar(&cfg.Rate, "rate", cfg.Rate, "Sample rate in Hz of all tracks")
	flags.IntVar(&cfg.InputChannels, "input-channels", cfg.InputChannels, "Interleaved channels of raw inputs (1 or 2)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Suppress the summary table and progress bar")

	return rootCmd
}

func run(cmd *cobra.Command, cfg config.Config, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if cfg.Quiet {
		logger = logging.Discard()
	}

	originalPath, mixedPath, diffPath, sumPath := args[0], args[1], args[2], args[3]
	loadOpts := lectorx.LoadOptions{Rate: cfg.Rate, Channels: cfg.InputChannels}

	logger.Info("loading tracks", "original", originalPath, "mixed", mixedPath)
	original, err := lectorx.LoadTrack(originalPath, loadOpts)
	if err != nil {
		return err
	}
	mixed, err := lectorx.LoadTrack(mixedPath, loadOpts)
	if err != nil {
		return err
	}
	logger.Debug("tracks loaded",
		"original_samples", original.Len(),
		"mixed_samples", mixed.Len(),
	)

	opts, bar, err := buildOptions(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	res, err := lectorx.Extract(original, mixed, opts)
	bar.finish()
	if err != nil {
		return err
	}

	logResult(logger, res, cfg.Rate)

	if err := lectorx.WriteOutputs(diffPath, sumPath, res, cfg.Rate); err != nil {
		return err
	}
	logger.Info("outputs written", "diff", diffPath, "sum", sumPath)

	if !cfg.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(res, cfg.Rate, diffPath, sumPath))
	}

	return nil
}

func buildOptions(cfg config.Config, progressOut io.Writer) (lectorx.Options, *progress, error) {
	bar := newProgress(progressOut, cfg.Quiet || cfg.FixedLag != nil)

	strategy, err := cfg.LagStrategy(bar.update)
	if err != nil {
		return lectorx.Options{}, nil, err
	}
	alignment, err := align.ParseStrategy(cfg.Align)
	if err != nil {
		return lectorx.Options{}, nil, err
	}
	policy, err := mix.ParsePolicy(cfg.Policy)
	if err != nil {
		return lectorx.Options{}, nil, err
	}

	return lectorx.Options{
		Lag:    strategy,
		Align:  alignment,
		Policy: policy,
	}, bar, nil
}

func logResult(logger *slog.Logger, res *lectorx.Result, rate int) {
	attrs := []any{
		"lag", res.Lag,
		"lag_ms", res.LagMillis(rate),
	}
	if res.Search != nil {
		attrs = append(attrs,
			"score", res.Search.Score,
			"evaluated", res.Search.Evaluated,
			"candidates", res.Search.Candidates,
		)
	}
	logger.Info("lag estimated", attrs...)
	logger.Info("gain estimated", "alpha", res.Alpha, "aligned_samples", res.A.Len())
}

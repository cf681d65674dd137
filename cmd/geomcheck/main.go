// Package main provides the geomcheck binary entry point.
// Geomcheck evaluates domain description scripts and reports the
// resulting domain extents, lengths, and boundaries.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turboflow/geom/pkg/engine"
	"github.com/turboflow/geom/pkg/geometry"
)

const (
	Version = "0.1.0"
	appName = "geomcheck"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect domain description scripts",
		Long: `Geomcheck evaluates a domain description script and reports the
rectangular simulation domain it declares.

A script declares its domain with a single form:

  (domain x_min x_max y_min y_max z_min z_max)

Each minimum must be strictly less than its maximum.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", engine.EvalTimeout, "Evaluation time limit")

	cmd.AddCommand(describeCmd(&logLevel, &timeout))
	cmd.AddCommand(checkCmd(&logLevel, &timeout))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func describeCmd(logLevel *string, timeout *time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <script>",
		Short: "Evaluate a script and print the declared domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := evaluateScript(cmd, args[0], *logLevel, *timeout)
			if err != nil {
				return err
			}
			describeDomain(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func checkCmd(logLevel *string, timeout *time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Evaluate a script and report whether the domain is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := evaluateScript(cmd, args[0], *logLevel, *timeout)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", d)
			return nil
		},
	}
}

// evaluateScript loads a script from disk and runs it through the
// engine. Eval errors are printed to stderr individually; a single
// summary error is returned so the process exits non-zero.
func evaluateScript(cmd *cobra.Command, path, logLevel string, timeout time.Duration) (*geometry.Cartesian, error) {
	logger := newLogger(logLevel)

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	ev := engine.NewEngine()
	ev.Timeout = timeout

	logger.Debug("evaluating domain script", "path", path, "timeout", timeout)

	d, evalErrs, err := ev.Evaluate(string(source))
	if err != nil {
		return nil, fmt.Errorf("evaluate script: %w", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, e.Error())
		}
		return nil, fmt.Errorf("invalid domain script: %d error(s)", len(evalErrs))
	}

	logger.Debug("domain evaluated", "domain", d.String())
	return d, nil
}

// describeDomain prints a human-readable report of the domain.
func describeDomain(w io.Writer, d *geometry.Cartesian) {
	cx, cy, cz := d.Center()

	names := d.Boundaries().Names()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}

	fmt.Fprintf(w, "extents:    x [%g, %g]  y [%g, %g]  z [%g, %g]\n",
		d.XMin(), d.XMax(), d.YMin(), d.YMax(), d.ZMin(), d.ZMax())
	fmt.Fprintf(w, "lengths:    LX=%g LY=%g LZ=%g\n", d.LX(), d.LY(), d.LZ())
	fmt.Fprintf(w, "volume:     %g\n", d.Volume())
	fmt.Fprintf(w, "center:     (%g, %g, %g)\n", cx, cy, cz)
	fmt.Fprintf(w, "boundaries: %s\n", strings.Join(parts, " "))
}

// newLogger builds a text slog logger at the requested level, writing
// to stderr so report output on stdout stays clean.
func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/vifprune/config"
)

// addSolverFlags registers the flags shared by run and score.
func addSolverFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input CSV (header row, numeric records)")
	cmd.Flags().String("solver", config.SolverNative, "Regression solver (native|gonum)")
	cmd.Flags().Int("parallel", 1, "Concurrent regressions per round")
	_ = cmd.MarkFlagRequired("input")
}

// resolveConfig loads --config (if any) and applies every flag the user set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Threshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("protect") {
		names, _ := flags.GetStringSlice("protect")
		cfg.Protected = trimAll(names)
	}
	if flags.Changed("solver") {
		cfg.Solver, _ = flags.GetString("solver")
	}
	if flags.Changed("parallel") {
		cfg.Parallelism, _ = flags.GetInt("parallel")
	}
	if flags.Changed("batch-infinite") {
		cfg.BatchInfinite, _ = flags.GetBool("batch-infinite")
	}
	if flags.Changed("strict-protected") {
		cfg.StrictProtected, _ = flags.GetBool("strict-protected")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}

	return cfg, cfg.Validate()
}

func trimAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}

	return out
}

// newLogger builds the process logger on w from the validated log settings.
func newLogger(lc config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	format := lc.Format
	if format == config.FormatAuto {
		format = config.FormatJSON
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = config.FormatConsole
		}
	}
	if format == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("app", appName).Logger()
}

// Package config holds the run configuration of the vifprune command:
// threshold, protected features, solver and logging. It is loaded from YAML
// over Default() and turned into eliminate options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vifprune/eliminate"
	"github.com/katalvlaran/vifprune/gonumvif"
	"github.com/katalvlaran/vifprune/vif"
)

// Solver names.
const (
	SolverNative = "native"
	SolverGonum  = "gonum"
)

// Log formats. FormatAuto picks console on a terminal and JSON otherwise.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the YAML document accepted by --config.
type Config struct {
	Threshold       float64   `yaml:"threshold"`
	Protected       []string  `yaml:"protected"`
	Solver          string    `yaml:"solver"`           // native | gonum
	Parallelism     int       `yaml:"parallelism"`      // concurrent regressions per round
	Tolerance       float64   `yaml:"tolerance"`        // exact-fit cutoff
	BatchInfinite   bool      `yaml:"batch_infinite"`   // remove infinite scores together at the end
	StrictProtected bool      `yaml:"strict_protected"` // unknown protected names fail
	Log             LogConfig `yaml:"log"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // auto | console | json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Threshold:   eliminate.DefaultThreshold,
		Solver:      SolverNative,
		Parallelism: vif.DefaultParallelism,
		Tolerance:   vif.DefaultTolerance,
		Log:         LogConfig{Level: "info", Format: FormatAuto},
	}
}

// Load reads path and decodes it over Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default(). Unknown keys are rejected; an empty
// document yields the defaults. The result is validated.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var problems []string
	if math.IsNaN(c.Threshold) || c.Threshold < 0 {
		problems = append(problems, fmt.Sprintf("threshold %v must be >= 0", c.Threshold))
	}
	if c.Solver != SolverNative && c.Solver != SolverGonum {
		problems = append(problems, fmt.Sprintf("solver %q must be %q or %q", c.Solver, SolverNative, SolverGonum))
	}
	if c.Parallelism < 1 {
		problems = append(problems, fmt.Sprintf("parallelism %d must be >= 1", c.Parallelism))
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 || c.Tolerance >= 1 {
		problems = append(problems, fmt.Sprintf("tolerance %v must be in [0,1)", c.Tolerance))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		problems = append(problems, fmt.Sprintf("log level %q is unknown", c.Log.Level))
	}
	switch c.Log.Format {
	case FormatAuto, FormatConsole, FormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("log format %q must be %q, %q or %q", c.Log.Format, FormatAuto, FormatConsole, FormatJSON))
	}
	for _, p := range c.Protected {
		if strings.TrimSpace(p) == "" {
			problems = append(problems, "protected names must not be empty")
			break
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// Provider builds the scorer selected by Solver. Call Validate first.
func (c Config) Provider() vif.Provider {
	opts := []vif.Option{vif.WithParallelism(c.Parallelism), vif.WithTolerance(c.Tolerance)}
	if c.Solver == SolverGonum {
		return gonumvif.New(opts...)
	}

	return vif.NewOLS(opts...)
}

// EliminateOptions turns c into options for eliminate.Eliminate.
func (c Config) EliminateOptions(logger zerolog.Logger) []eliminate.Option {
	opts := []eliminate.Option{
		eliminate.WithProvider(c.Provider()),
		eliminate.WithLogger(logger),
	}
	if c.BatchInfinite {
		opts = append(opts, eliminate.WithBatchInfiniteRemoval())
	}
	if c.StrictProtected {
		opts = append(opts, eliminate.WithStrictProtected())
	}

	return opts
}

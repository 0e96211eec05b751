package vif

import (
	"math"

	"github.com/katalvlaran/vifprune/matrix"
)

// Defaults for OLS scoring.
const (
	// DefaultTolerance is the relative cutoff below which a fit is treated
	// as exact (R² = 1, score +Inf): rss ≤ tol²·tss.
	DefaultTolerance = 1e-10

	// DefaultRankTolerance is the column-dependency cutoff of the QR solve.
	DefaultRankTolerance = matrix.DefaultRankTolerance

	// DefaultParallelism runs the per-column regressions sequentially.
	DefaultParallelism = 1
)

const (
	panicToleranceInvalid   = "vif: WithTolerance: tol must be finite, in [0,1)"
	panicRankTolInvalid     = "vif: WithRankTolerance: tol must be finite, in [0,1)"
	panicParallelismInvalid = "vif: WithParallelism: n must be >= 1"
)

// Option configures an OLS provider.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved provider configuration.
type Options struct {
	tol         float64
	rankTol     float64
	parallelism int
}

// Tolerance returns the exact-fit cutoff.
func (o Options) Tolerance() float64 { return o.tol }

// RankTolerance returns the QR dependency cutoff.
func (o Options) RankTolerance() float64 { return o.rankTol }

// Parallelism returns the number of concurrent regressions.
func (o Options) Parallelism() int { return o.parallelism }

// WithTolerance sets the exact-fit cutoff used to report +Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithRankTolerance sets the relative column-norm cutoff of the QR solve.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 0 || tol >= 1 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithParallelism runs up to n column regressions concurrently.
// Scores do not depend on n.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.parallelism = n }
}

// GatherOptions resolves opts over the defaults. Nil options are skipped.
func GatherOptions(opts ...Option) Options {
	o := Options{
		tol:         DefaultTolerance,
		rankTol:     DefaultRankTolerance,
		parallelism: DefaultParallelism,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

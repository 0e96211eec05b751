package eliminate

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/vifprune/vif"
)

const (
	// DefaultThreshold is the largest acceptable score of a kept feature.
	DefaultThreshold = 5.0

	// ReportPrecision is the number of decimals of Result.Scores.
	ReportPrecision = 3
)

const (
	panicNilProvider  = "eliminate: WithProvider: provider must not be nil"
	panicMaxRoundsLow = "eliminate: WithMaxRounds: n must be >= 1"
)

// Option configures Eliminate.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration of one Eliminate call.
type Options struct {
	provider      vif.Provider
	logger        zerolog.Logger
	onRound       func(RoundInfo)
	strict        bool
	batchInfinite bool
	maxRounds     int // 0: only the feature-count bound applies
}

// WithProvider replaces the default vif.NewOLS() scorer.
func WithProvider(p vif.Provider) Option {
	if p == nil {
		panic(panicNilProvider)
	}

	return func(o *Options) { o.provider = p }
}

// WithLogger sets the logger for round and drop events (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithOnRound registers fn to be called after every scoring round.
func WithOnRound(fn func(RoundInfo)) Option {
	return func(o *Options) { o.onRound = fn }
}

// WithStrictProtected makes unknown protected names a *ConfigurationError.
// By default they are ignored.
func WithStrictProtected() Option {
	return func(o *Options) { o.strict = true }
}

// WithBatchInfiniteRemoval excludes infinite scores from the per-round
// candidates and removes all non-protected infinite features together when
// the loop ends. By default an infinite score is an ordinary candidate and
// is dropped one per round like any other maximum.
func WithBatchInfiniteRemoval() Option {
	return func(o *Options) { o.batchInfinite = true }
}

// WithMaxRounds caps the number of scoring rounds. Exceeding it returns
// ErrRoundLimit.
func WithMaxRounds(n int) Option {
	if n < 1 {
		panic(panicMaxRoundsLow)
	}

	return func(o *Options) { o.maxRounds = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.provider == nil {
		o.provider = vif.NewOLS()
	}

	return o
}

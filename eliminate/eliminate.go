package eliminate

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/vifprune/frame"
	"github.com/katalvlaran/vifprune/vif"
)

// protectedSet is the caller's protected names plus const. It is built from a
// copy, so the caller's slice is never touched.
type protectedSet map[string]struct{}

func newProtectedSet(names []string) protectedSet {
	p := make(protectedSet, len(names)+1)
	for _, n := range names {
		p[n] = struct{}{}
	}
	p[frame.ConstName] = struct{}{}

	return p
}

func (p protectedSet) has(name string) bool {
	_, ok := p[name]
	return ok
}

// Eliminate removes features from t until every non-protected feature scores
// at most threshold and none has an infinite score.
//
// Each round scores the augmented table (t plus const), collects the
// droppable candidates (non-protected, score > threshold) and removes the one
// with the highest score, the first in column order on ties. When no
// candidate is left the surviving features are returned in input order.
// Protected features, and const, are never removed. The loop runs at most
// once per non-protected feature plus a final round.
//
// Errors:
//   - *ConfigurationError: nil t, NaN or negative threshold, unknown protected
//     name with WithStrictProtected.
//   - Provider errors, returned as they are (*vif.ComputationError for the
//     built-in providers). A column of t named const that is not all ones
//     fails the first round with vif.ErrConstantClash; a column of ones
//     under that name is used as the intercept and is not returned.
//   - *vif.ComputationError wrapping ErrNoFeaturesLeft when only protected
//     columns would remain and none of them is a feature.
//   - ErrRoundLimit when WithMaxRounds is exceeded.
func Eliminate(t *frame.Table, protected []string, threshold float64, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, &ConfigurationError{Field: "table", Value: nil, Err: ErrNilTable}
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, &ConfigurationError{Field: "threshold", Value: threshold, Err: ErrInvalidThreshold}
	}
	o := gatherOptions(opts...)
	keep := newProtectedSet(protected)
	if o.strict {
		for _, n := range protected {
			if n != frame.ConstName && !t.Has(n) {
				return nil, &ConfigurationError{Field: "protected", Value: n, Err: ErrUnknownProtected}
			}
		}
	}

	budget := 0
	for _, n := range t.Names() {
		if !keep.has(n) {
			budget++
		}
	}
	log := o.logger.With().Float64("threshold", threshold).Logger()
	log.Debug().Int("features", t.NumCols()).Int("budget", budget).Msg("elimination started")

	current := t
	res := &Result{}
	for round := 1; ; round++ {
		if o.maxRounds > 0 && round > o.maxRounds {
			return nil, fmt.Errorf("%w: %d rounds", ErrRoundLimit, o.maxRounds)
		}
		if len(res.Dropped) > budget {
			return nil, fmt.Errorf("%w: %d drops for %d droppable features", ErrRoundLimit, len(res.Dropped), budget)
		}

		aug, scores, err := o.provider.Score(current)
		if err != nil {
			return nil, err
		}
		res.Rounds = round
		log.Debug().Int("round", round).Int("columns", aug.NumCols()).Msg("scored")

		surviving := scores.Filter(func(n string, v float64) bool {
			return keep.has(n) || !math.IsInf(v, 1)
		})
		pool := scores
		if o.batchInfinite {
			pool = surviving
		}
		candidates := pool.Filter(func(n string, v float64) bool {
			return !keep.has(n) && v > threshold
		})

		info := RoundInfo{Round: round, Columns: aug.Names(), Scores: scores, Candidates: candidates}
		if candidates.Len() == 0 {
			info.Terminal = true
			o.notify(info)

			return finish(res, aug, scores, surviving, round, log)
		}

		_, name, err := vif.DropHighest(candidates)
		if err != nil {
			return nil, err
		}
		score, _ := candidates.Get(name)
		reason := ReasonThreshold
		if math.IsInf(score, 1) {
			reason = ReasonInfinite
		}
		if current, err = aug.Drop(name); err != nil {
			return nil, fmt.Errorf("eliminate: round %d: %w", round, err)
		}
		res.Dropped = append(res.Dropped, Drop{Round: round, Feature: name, Score: score, Reason: reason})
		info.Dropped = name
		o.notify(info)

		log.Info().Int("round", round).Str("feature", name).Float64("score", score).
			Stringer("reason", reason).Msg("feature dropped")
	}
}

// finish restricts aug to the surviving names, records the non-protected
// infinite features removed by that restriction and strips const.
func finish(res *Result, aug *frame.Table, scores, surviving vif.Scores, round int, log zerolog.Logger) (*Result, error) {
	scores.Each(func(n string, v float64) bool {
		if !surviving.Has(n) {
			res.Dropped = append(res.Dropped, Drop{Round: round, Feature: n, Score: v, Reason: ReasonInfiniteBatch})
			log.Info().Int("round", round).Str("feature", n).Msg("infinite feature removed")
		}
		return true
	})

	kept, err := aug.Select(surviving.Names())
	if err != nil {
		return nil, fmt.Errorf("eliminate: final selection: %w", err)
	}
	out, err := kept.WithoutConstant()
	if err != nil {
		return nil, &vif.ComputationError{Op: "restrict", Err: ErrNoFeaturesLeft}
	}
	res.Table = out
	res.Scores = surviving.Round(ReportPrecision)
	log.Debug().Int("rounds", round).Int("kept", out.NumCols()).Int("dropped", len(res.Dropped)).Msg("elimination finished")

	return res, nil
}

func (o Options) notify(info RoundInfo) {
	if o.onRound != nil {
		o.onRound(info)
	}
}

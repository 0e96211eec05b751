// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and the
// least-squares kernel. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - validateNaNInf controls whether Set() rejects NaN/±Inf on a Dense.
//     Tables loaded from external sources are built with the policy OFF so that
//     non-finite data reaches the scoring layer, which reports it explicitly.
//   - rankTol drives rank detection in LeastSquares: a pivot column whose
//     remaining norm falls to rankTol times its original norm (or below) is
//     declared linearly dependent on the columns already factored.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultRankTolerance is the relative column-norm cutoff used by
	// LeastSquares to detect exact linear dependency in double precision.
	DefaultRankTolerance = 1e-10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRankTolInvalid = "matrix: WithRankTolerance: tol must be finite, in [0,1)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	rankTol        float64 // [0,1); DefaultRankTolerance
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on Set.
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - The Dense accepts NaN/±Inf; kernels that need finite input still check
//     it explicitly through ValidateFinite.
//
// AI-Hints:
//   - Use for ingestion of external data that is sanitized (or rejected) later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRankTolerance sets the relative cutoff used by LeastSquares rank detection.
// Implementation:
//   - Stage 1: validate 0 ≤ tol < 1 and finite.
//   - Stage 2: return a setter that writes rankTol into Options.
//
// Behavior highlights:
//   - tol=0 only treats exactly-zero remaining columns as dependent.
//   - Larger tol declares near-collinear columns dependent; use judiciously.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
func WithRankTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 || tol >= 1 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// gatherOptions resolves user setters over the documented defaults.
// Apply order is left-to-right; last writer wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		rankTol:        DefaultRankTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

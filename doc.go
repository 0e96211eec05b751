// Package vifprune removes multicollinear features from numeric tables
// before they reach a linear model.
//
// 🚀 What is vifprune?
//
//	A small, dependency-light toolkit built around one loop:
//		• Score every feature with its variance inflation factor (VIF)
//		• Drop the worst non-protected feature
//		• Repeat until every feature left scores at or below the threshold
//
// ✨ Why choose vifprune?
//
//   - Deterministic: ties are broken by column order, never by map order
//   - Exact collinearity handled: rank-revealing solvers report +Inf
//     instead of failing on singular designs
//   - Pluggable scoring: the built-in QR solver, gonum's SVD, or your own
//     vif.Provider
//   - Immutable tables: every drop returns a new snapshot
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    - dense matrix, validators, pivoted Householder least squares
//	frame/     - named-column Table with copy-on-drop and the const column
//	vif/       - Scores, Provider, the OLS scorer and DropHighest
//	eliminate/ - the elimination loop, options and round reporting
//	gonumvif/  - gonum-backed Provider and a Fit/Transform adapter
//	dataset/   - CSV ingestion and emission
//	config/    - YAML run configuration
//	cmd/vifprune - command-line front end
//
// Quick example:
//
//	tbl, _ := frame.New([]string{"A", "B", "C"}, columns)
//	res, err := eliminate.Eliminate(tbl, []string{"B"}, eliminate.DefaultThreshold)
//	// res.Table holds the survivors, res.Dropped the removal history.
//
//	go install github.com/katalvlaran/vifprune/cmd/vifprune@latest
package vifprune

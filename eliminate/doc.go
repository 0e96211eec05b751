// Package eliminate implements iterative multicollinearity reduction.
//
// Eliminate scores every column of the augmented table with a vif.Provider,
// drops the worst non-protected feature and repeats until no non-protected
// feature scores above the threshold. The result keeps the surviving
// features in input order with their values unchanged.
//
// Infinite scores (exact linear dependency) are handled in one of two ways:
//
//	default                    - an infinite score is the round's maximum and is
//	                             dropped like any other candidate, one per round,
//	                             the first in column order on ties. Of an exactly
//	                             collinear pair only the first is removed.
//	WithBatchInfiniteRemoval() - infinite features never compete as candidates;
//	                             all non-protected ones are removed together when
//	                             the loop terminates.
//
// Protected features, and the const column, are never removed. Every
// non-terminal round removes exactly one column, so the loop ends after at
// most one round per non-protected feature plus a final round.
//
// The engine logs through a caller-supplied zerolog.Logger (WithLogger) and
// reports each round to an optional hook (WithOnRound).
package eliminate

package eliminate

import (
	"github.com/katalvlaran/vifprune/frame"
	"github.com/katalvlaran/vifprune/vif"
)

// DropReason tells why a feature left the table.
type DropReason int

const (
	// ReasonThreshold: finite score above the threshold.
	ReasonThreshold DropReason = iota + 1
	// ReasonInfinite: infinite score, dropped as the round's maximum.
	ReasonInfinite
	// ReasonInfiniteBatch: infinite score, removed with the other infinite
	// features when the loop terminated.
	ReasonInfiniteBatch
)

func (r DropReason) String() string {
	switch r {
	case ReasonThreshold:
		return "threshold"
	case ReasonInfinite:
		return "infinite"
	case ReasonInfiniteBatch:
		return "infinite-batch"
	default:
		return "unknown"
	}
}

// Drop records one removed feature.
type Drop struct {
	Round   int
	Feature string
	Score   float64
	Reason  DropReason
}

// Result is the outcome of Eliminate.
type Result struct {
	// Table holds the surviving features in input order, without const.
	Table *frame.Table
	// Scores are the surviving scores of the last round (const included),
	// rounded to ReportPrecision decimals.
	Scores vif.Scores
	// Dropped lists removed features in removal order.
	Dropped []Drop
	// Rounds is the number of scoring rounds performed.
	Rounds int
}

// DroppedNames returns the removed feature names in removal order.
func (r *Result) DroppedNames() []string {
	out := make([]string, len(r.Dropped))
	for i, d := range r.Dropped {
		out[i] = d.Feature
	}

	return out
}

// RoundInfo is passed to the WithOnRound hook after each scoring round.
type RoundInfo struct {
	Round      int
	Columns    []string   // augmented table that was scored
	Scores     vif.Scores // raw scores of that table
	Candidates vif.Scores // droppable entries
	Dropped    string     // empty on the terminal round
	Terminal   bool
}

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/vifprune/eliminate"
	"github.com/katalvlaran/vifprune/vif"
)

func formatScore(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}

	return fmt.Sprintf("%.3f", v)
}

// renderDrops prints the removal history.
func renderDrops(w io.Writer, drops []eliminate.Drop) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Dropped features")
	t.AppendHeader(table.Row{"Round", "Feature", "VIF", "Reason"})
	for _, d := range drops {
		t.AppendRow(table.Row{d.Round, d.Feature, formatScore(d.Score), d.Reason.String()})
	}
	if len(drops) == 0 {
		t.AppendRow(table.Row{"-", "(none)", "-", "-"})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderScores prints one row per score, marking entries above threshold.
func renderScores(w io.Writer, title string, s vif.Scores, protected map[string]bool, threshold float64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Feature", "VIF", "Status"})
	s.Each(func(name string, v float64) bool {
		status := "ok"
		switch {
		case protected[name]:
			status = "protected"
		case math.IsInf(v, 1):
			status = "collinear"
		case v > threshold:
			status = "above threshold"
		}
		t.AppendRow(table.Row{name, formatScore(v), status})
		return true
	})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.SetStyle(table.StyleLight)
	t.Render()
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vifprune/dataset"
	"github.com/katalvlaran/vifprune/eliminate"
	"github.com/katalvlaran/vifprune/frame"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Print the VIF of every feature without removing any",
		Example: "  vifprune score -i data.csv --solver gonum",
		Args:    cobra.NoArgs,
		RunE:    runScore,
	}
	addSolverFlags(cmd)
	cmd.Flags().Float64("threshold", eliminate.DefaultThreshold, "Mark features above this VIF")

	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, cmd.ErrOrStderr())

	input, _ := cmd.Flags().GetString("input")
	tbl, err := dataset.LoadCSV(input)
	if err != nil {
		return err
	}
	_, scores, err := cfg.Provider().Score(tbl)
	if err != nil {
		return err
	}
	logger.Debug().Str("input", input).Int("features", tbl.NumCols()).Msg("scored")

	renderScores(cmd.OutOrStdout(), "VIF", scores, map[string]bool{frame.ConstName: true}, cfg.Threshold)

	return nil
}

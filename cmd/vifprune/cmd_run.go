package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vifprune/dataset"
	"github.com/katalvlaran/vifprune/eliminate"
	"github.com/katalvlaran/vifprune/frame"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Eliminate collinear features and write the reduced table",
		Example: `  vifprune run -i data.csv -o reduced.csv
  vifprune run -i data.csv --protect age,income --threshold 10 --solver gonum`,
		Args: cobra.NoArgs,
		RunE: runEliminate,
	}
	addSolverFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Write the reduced table to this CSV file")
	cmd.Flags().StringSlice("protect", nil, "Comma-separated features that are never dropped")
	cmd.Flags().Float64("threshold", eliminate.DefaultThreshold, "Largest acceptable VIF of a kept feature")
	cmd.Flags().Bool("batch-infinite", false, "Remove all infinite-VIF features together at the end")
	cmd.Flags().Bool("strict-protected", false, "Fail when a protected feature is not in the input")

	return cmd
}

func runEliminate(cmd *cobra.Command, _ []string) error {
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
	logger.Info().Str("input", input).Int("rows", tbl.NumRows()).Int("features", tbl.NumCols()).
		Str("solver", cfg.Solver).Msg("dataset loaded")

	res, err := eliminate.Eliminate(tbl, cfg.Protected, cfg.Threshold, cfg.EliminateOptions(logger)...)
	if err != nil {
		return fmt.Errorf("eliminate: %w", err)
	}

	out := cmd.OutOrStdout()
	renderDrops(out, res.Dropped)
	protected := map[string]bool{frame.ConstName: true}
	for _, p := range cfg.Protected {
		protected[p] = true
	}
	renderScores(out, "Final VIF", res.Scores, protected, cfg.Threshold)
	fmt.Fprintf(out, "kept %d of %d features in %d rounds\n", res.Table.NumCols(), tbl.NumCols(), res.Rounds)

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err = dataset.SaveCSV(path, res.Table); err != nil {
			return err
		}
		logger.Info().Str("output", path).Strs("features", res.Table.Names()).Msg("reduced table written")
	}

	return nil
}

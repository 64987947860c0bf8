package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"reviewprep/pkg/data"
)

func newHeatmapCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "heatmap",
		Short:   "Plot the absolute correlation matrix of the numeric columns",
		Example: `  reviewprep heatmap --input features.csv --output corr.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := e.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if cfg.Input == "" || cfg.Output == "" {
				return errors.New("--input and --output are required")
			}
			df, err := data.LoadCSV(cfg.Input)
			if err != nil {
				return err
			}
			if err := writeHeatmap(df, cfg.Output, cfg, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote heatmap to %s\n", cfg.Output)
			return nil
		},
	}
}

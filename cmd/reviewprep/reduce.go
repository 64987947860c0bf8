package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reviewprep/pkg/config"
	"reviewprep/pkg/data"
)

func newReduceCommand(e *env) *cobra.Command {
	var exclude []string

	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Drop numeric columns highly correlated with an earlier column",
		Long: `Drop numeric columns whose absolute Pearson correlation with an earlier
column is above --threshold. Non-numeric columns are kept untouched.

Example:
  reviewprep reduce --input features.csv --output reduced.csv --threshold 0.9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := e.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return runReduce(cmd, cfg, logger, exclude)
		},
	}

	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Numeric columns never considered for dropping")
	return cmd
}

func runReduce(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, exclude []string) error {
	if cfg.Input == "" {
		return errors.New("--input is required")
	}
	df, err := data.LoadCSV(cfg.Input)
	if err != nil {
		return err
	}

	reducer := newReducer(cfg, logger, exclude...)
	before := df.Names()
	out, err := reducer.Transform(df)
	if err != nil {
		return err
	}
	dropped := missing(before, out.Names())

	if cfg.Output != "" {
		if err := data.SaveCSV(out, cfg.Output); err != nil {
			return err
		}
		logger.Info("saved dataset", zap.String("path", cfg.Output))
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "kept %d of %d columns\n", out.Ncol(), len(before))
	if len(dropped) == 0 {
		fmt.Fprintln(w, "dropped: none")
	} else {
		fmt.Fprintf(w, "dropped: %s\n", strings.Join(dropped, ", "))
	}
	return nil
}

// missing returns the names in before that are absent from after, in order.
func missing(before, after []string) []string {
	kept := make(map[string]struct{}, len(after))
	for _, n := range after {
		kept[n] = struct{}{}
	}
	var out []string
	for _, n := range before {
		if _, ok := kept[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

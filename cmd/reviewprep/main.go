package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"reviewprep/pkg/config"
	"reviewprep/pkg/dataprep"
	"reviewprep/pkg/logging"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env carries the viper instance and config file path shared by all subcommands.
type env struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCommand() *cobra.Command {
	e := &env{v: viper.New()}

	root := &cobra.Command{
		Use:   "reviewprep",
		Short: "Feature engineering for review sentiment datasets",
		Long: `reviewprep prepares tabular review data for a sentiment classifier.

It can:
- derive month/day/dayofweek/hour features from a timestamp column
- clean review text and count its characters
- score sentiment with a word lexicon and label it positive/neutral/negative
- drop numeric features that are highly correlated with an earlier feature`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.cfgFile, "config", "", "Config file (yaml, json or toml)")
	pf.String("input", "", "Input CSV file")
	pf.String("output", "", "Output file")
	pf.Float64("threshold", dataprep.DefaultThreshold, "Absolute correlation above which a later column is dropped")
	pf.String("nan-policy", "ignore", "Undefined correlation handling: ignore or error")
	pf.Int("workers", 0, "Goroutines for the correlation matrix (0 = GOMAXPROCS)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "console", "Log format (console, json)")
	bindFlags(e.v, pf, "input", "output", "threshold", "nan-policy", "workers", "log-level", "log-format")

	root.AddCommand(newPrepareCommand(e))
	root.AddCommand(newReduceCommand(e))
	root.AddCommand(newHeatmapCommand(e))
	root.AddCommand(newVersionCommand())
	return root
}

// bindFlags binds each flag to the viper key with dashes turned into underscores.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// load resolves the configuration and builds the logger.
func (e *env) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(e.v, e.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newReducer(cfg *config.Config, logger *zap.Logger, exclude ...string) *dataprep.CorrelationReducer {
	return dataprep.NewCorrelationReducer(
		dataprep.WithThreshold(cfg.Threshold),
		dataprep.WithNaNPolicy(cfg.Policy()),
		dataprep.WithWorkers(cfg.Workers),
		dataprep.WithExclude(exclude...),
		dataprep.WithLogger(logger),
	)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "reviewprep v%s\n", version)
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reviewprep/pkg/config"
	"reviewprep/pkg/data"
	"reviewprep/pkg/dataprep"
	"reviewprep/pkg/pipeline"
	"reviewprep/pkg/report"
	"reviewprep/pkg/sentiment"
	"reviewprep/pkg/text"
)

func newPrepareCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Run the feature pipeline over a review CSV",
		Long: `Run the feature pipeline over a review CSV.

Steps run in this order and are skipped when their column is not set:
  date features  --date-column
  clean text     --text-column + --clean-text-column
  char count     --text-column + --char-count-column
  sentiment      --text-column + --lexicon
  label          --label-column (from --score-column), --target-column
  drop_high_corr always, over numeric columns except the target

Example:
  reviewprep prepare --input reviews.csv --text-column review --date-column date \
    --lexicon vader_lexicon.txt --label-column sentiment --target-column target`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := e.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return runPrepare(cmd, cfg, logger)
		},
	}

	fs := cmd.Flags()
	fs.String("text-column", "", "Review text column")
	fs.String("date-column", "", "Timestamp column to decompose")
	fs.String("date-layout", "", "Go time layout of the timestamp column (default: common layouts)")
	fs.String("score-column", "polarity", "Polarity column to label")
	fs.String("subjectivity-column", "subjectivity", "Subjectivity column written by the lexicon scorer")
	fs.String("label-column", "", "Sentiment label column to add")
	fs.String("target-column", "", "Integer class column to add (negative=0, neutral=1, positive=2)")
	fs.String("char-count-column", "", "Character count column to add")
	fs.String("clean-text-column", "", "Cleaned text column to add")
	fs.String("lexicon", "", "Tab-separated word/valence lexicon used for sentiment scoring")
	fs.String("heatmap", "", "Write a correlation heatmap of the numeric features to this PNG")
	bindFlags(e.v, fs, "text-column", "date-column", "date-layout", "score-column", "subjectivity-column",
		"label-column", "target-column", "char-count-column", "clean-text-column", "lexicon", "heatmap")

	return cmd
}

func runPrepare(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) error {
	if cfg.Input == "" {
		return errors.New("--input is required")
	}
	df, err := data.LoadCSV(cfg.Input)
	if err != nil {
		return err
	}
	logger.Info("loaded dataset", zap.String("path", cfg.Input), zap.Int("rows", df.Nrow()), zap.Int("columns", df.Ncol()))

	p, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("pipeline", zap.Strings("steps", p.Steps()))

	out, err := p.Transform(df)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(cfg.Input), "prepared_"+filepath.Base(cfg.Input))
	}
	if err := data.SaveCSV(out, output); err != nil {
		return err
	}

	if cfg.Heatmap != "" {
		if err := writeHeatmap(out, cfg.Heatmap, cfg, logger); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows x %d columns to %s\n", out.Nrow(), out.Ncol(), output)
	return nil
}

func buildPipeline(cfg *config.Config, logger *zap.Logger) (*pipeline.Pipeline, error) {
	p := pipeline.NewPipeline(logger)

	if cfg.DateColumn != "" {
		var layouts []string
		if cfg.DateLayout != "" {
			layouts = []string{cfg.DateLayout}
		}
		p.Add(pipeline.StepFunc("date_features", func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return dataprep.DateFeatures(df, cfg.DateColumn, layouts...)
		}))
	}

	if cfg.TextColumn != "" {
		if cfg.CleanTextColumn != "" {
			stop := text.DefaultStopwords()
			p.Add(pipeline.StepFunc("clean_text", func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
				return dataprep.CleanText(df, cfg.TextColumn, cfg.CleanTextColumn, stop)
			}))
		}
		if cfg.CharCountColumn != "" {
			p.Add(pipeline.StepFunc("char_count", func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
				return dataprep.CharCount(df, cfg.TextColumn, cfg.CharCountColumn)
			}))
		}
		if cfg.Lexicon != "" {
			lex, err := sentiment.LoadLexiconFile(cfg.Lexicon)
			if err != nil {
				return nil, fmt.Errorf("load lexicon: %w", err)
			}
			logger.Info("loaded lexicon", zap.String("path", cfg.Lexicon), zap.Int("words", lex.Len()))
			p.Add(pipeline.StepFunc("sentiment", func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
				return dataprep.ScoreSentiment(df, cfg.TextColumn, cfg.ScoreColumn, cfg.SubjectivityColumn, lex)
			}))
		}
	}

	if cfg.LabelColumn != "" {
		p.Add(pipeline.StepFunc("sentiment_label", func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			out, err := dataprep.SentimentLabel(df, cfg.ScoreColumn, cfg.LabelColumn)
			if err != nil {
				return df, err
			}
			counts, err := dataprep.LabelCounts(out, cfg.LabelColumn)
			if err != nil {
				return df, err
			}
			logger.Info("computed labels", zap.Any("counts", counts))
			return out, nil
		}))
		if cfg.TargetColumn != "" {
			p.Add(pipeline.StepFunc("encode_labels", func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
				return dataprep.EncodeLabels(df, cfg.LabelColumn, cfg.TargetColumn)
			}))
		}
	}

	var exclude []string
	if cfg.TargetColumn != "" {
		exclude = append(exclude, cfg.TargetColumn)
	}
	p.Add(newReducer(cfg, logger, exclude...))

	return p, nil
}

func writeHeatmap(df dataframe.DataFrame, path string, cfg *config.Config, logger *zap.Logger) error {
	numeric := dataprep.NumericColumns(df)
	if len(numeric) == 0 {
		return errors.New("no numeric columns to plot")
	}
	names, corr, err := newReducer(cfg, logger).Matrix(df.Select(numeric))
	if err != nil {
		return err
	}
	if err := report.Heatmap(names, corr, path); err != nil {
		return err
	}
	logger.Info("wrote heatmap", zap.String("path", path), zap.Int("columns", len(names)))
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"reviewprep/pkg/dataprep"
)

// EnvPrefix is prepended to every environment key, e.g. REVIEWPREP_THRESHOLD.
const EnvPrefix = "REVIEWPREP"

type Config struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`

	TextColumn         string `mapstructure:"text_column"`
	DateColumn         string `mapstructure:"date_column"`
	DateLayout         string `mapstructure:"date_layout"`
	ScoreColumn        string `mapstructure:"score_column"`
	SubjectivityColumn string `mapstructure:"subjectivity_column"`
	LabelColumn        string `mapstructure:"label_column"`
	TargetColumn       string `mapstructure:"target_column"`
	CharCountColumn    string `mapstructure:"char_count_column"`
	CleanTextColumn    string `mapstructure:"clean_text_column"`
	Lexicon            string `mapstructure:"lexicon"`

	Threshold float64 `mapstructure:"threshold"`
	NaNPolicy string  `mapstructure:"nan_policy"`
	Workers   int     `mapstructure:"workers"`
	Heatmap   string  `mapstructure:"heatmap"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// SetDefaults registers every key so environment variables resolve for all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("text_column", "")
	v.SetDefault("date_column", "")
	v.SetDefault("date_layout", "")
	v.SetDefault("score_column", "polarity")
	v.SetDefault("subjectivity_column", "subjectivity")
	v.SetDefault("label_column", "")
	v.SetDefault("target_column", "")
	v.SetDefault("char_count_column", "")
	v.SetDefault("clean_text_column", "")
	v.SetDefault("lexicon", "")
	v.SetDefault("threshold", dataprep.DefaultThreshold)
	v.SetDefault("nan_policy", "ignore")
	v.SetDefault("workers", 0)
	v.SetDefault("heatmap", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// Load resolves the configuration from (highest first) flags already bound to v,
// REVIEWPREP_* environment variables, the optional config file and defaults.
// A .env file in the working directory is loaded into the environment first.
func Load(v *viper.Viper, file string) (*Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be in (0, 1], got %v", c.Threshold)
	}
	if _, err := dataprep.ParseNaNPolicy(c.NaNPolicy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if c.LabelColumn == "" && c.TargetColumn != "" {
		return errors.New("target_column needs label_column")
	}
	return nil
}

// Policy returns the parsed NaN policy. Call after Validate.
func (c *Config) Policy() dataprep.NaNPolicy {
	p, _ := dataprep.ParseNaNPolicy(c.NaNPolicy)
	return p
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewprep/pkg/dataprep"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, dataprep.DefaultThreshold, cfg.Threshold)
	assert.Equal(t, "ignore", cfg.NaNPolicy)
	assert.Equal(t, dataprep.NaNIgnore, cfg.Policy())
	assert.Equal(t, "polarity", cfg.ScoreColumn)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("REVIEWPREP_THRESHOLD", "0.9")
	t.Setenv("REVIEWPREP_NAN_POLICY", "error")
	t.Setenv("REVIEWPREP_TEXT_COLUMN", "review")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Threshold)
	assert.Equal(t, dataprep.NaNError, cfg.Policy())
	assert.Equal(t, "review", cfg.TextColumn)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviewprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
text_column: review
label_column: sentiment
target_column: target
workers: 4
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "review", cfg.TextColumn)
	assert.Equal(t, "sentiment", cfg.LabelColumn)
	assert.Equal(t, "target", cfg.TargetColumn)
	assert.Equal(t, 4, cfg.Workers)

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Threshold: 0.79, NaNPolicy: "ignore"}
	require.NoError(t, base.Validate())

	tests := map[string]func(c *Config){
		"zero threshold":    func(c *Config) { c.Threshold = 0 },
		"threshold above 1": func(c *Config) { c.Threshold = 1.2 },
		"bad policy":        func(c *Config) { c.NaNPolicy = "drop" },
		"negative workers":  func(c *Config) { c.Workers = -1 },
		"orphan target":     func(c *Config) { c.TargetColumn = "target" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "velocity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Len(t, cfg.Data.TrainingFiles, 46)
	assert.Len(t, cfg.Data.TestFiles, 2)
	assert.Equal(t, 1, cfg.Columns.FeatureStart)
	assert.Equal(t, 4, cfg.Columns.FeatureEnd)
	assert.Equal(t, 6, cfg.Columns.Target)
	assert.Equal(t, 0.2, cfg.Split.TestSize)
	assert.Equal(t, int64(42), cfg.Split.RandomState)
	assert.NoError(t, cfg.Validate())
}

func TestDefault_ReturnsIndependentFileLists(t *testing.T) {
	a := Default()
	a.Data.TrainingFiles[0] = "changed.csv"

	b := Default()
	assert.Equal(t, DefaultTrainingFiles[0], b.Data.TrainingFiles[0])
}

func TestFeatureRange(t *testing.T) {
	cols := ColumnsConfig{FeatureStart: 1, FeatureEnd: 4, Target: 6}
	r := cols.FeatureRange()

	assert.Equal(t, 1, r.Start)
	assert.Equal(t, 4, r.End)
	assert.Equal(t, 3, r.Width())
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
data:
  dir: /srv/sims
  training_files:
    - a.csv
    - b.csv
split:
  test_size: 0.3
  random_state: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/sims", cfg.Data.Dir)
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Data.TrainingFiles)
	assert.Equal(t, 0.3, cfg.Split.TestSize)
	assert.Equal(t, int64(7), cfg.Split.RandomState)
	// Untouched sections keep defaults
	assert.Equal(t, DefaultTestFiles, cfg.Data.TestFiles)
	assert.Equal(t, 6, cfg.Columns.Target)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
split:
  test_size: 0.3
  random_state: 7
`)
	t.Setenv("VELOCITY_SPLIT_TEST_SIZE", "0.25")
	t.Setenv("VELOCITY_DATA_TRAINING_FILES", "x.csv,y.csv,z.csv")
	t.Setenv("VELOCITY_LOGGING_LEVEL", "DEBUG")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Split.TestSize)
	assert.Equal(t, int64(7), cfg.Split.RandomState)
	assert.Equal(t, []string{"x.csv", "y.csv", "z.csv"}, cfg.Data.TrainingFiles)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfigFile(t, "split: [not, a, map")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadUnvalidated_DefersValidation(t *testing.T) {
	path := writeConfigFile(t, `
split:
  test_size: 1.5
`)

	_, err := Load(path)
	require.Error(t, err)

	cfg, err := LoadUnvalidated(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Split.TestSize)

	cfg.Split.TestSize = 0.2
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "test size zero",
			mutate:  func(c *Config) { c.Split.TestSize = 0 },
			wantErr: "TestSize",
		},
		{
			name:    "test size one",
			mutate:  func(c *Config) { c.Split.TestSize = 1 },
			wantErr: "TestSize",
		},
		{
			name:    "empty feature range",
			mutate:  func(c *Config) { c.Columns.FeatureEnd = c.Columns.FeatureStart },
			wantErr: "FeatureEnd",
		},
		{
			name:    "target inside feature range",
			mutate:  func(c *Config) { c.Columns.Target = 2 },
			wantErr: "overlaps feature columns",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "Level",
		},
		{
			name:    "unknown output format",
			mutate:  func(c *Config) { c.Output.Format = "parquet" },
			wantErr: "Format",
		},
		{
			name:    "file logging without path",
			mutate:  func(c *Config) { c.Logging.Output = "file"; c.Logging.FilePath = "" },
			wantErr: "requires a file path",
		},
		{
			name:    "blank training file name",
			mutate:  func(c *Config) { c.Data.TrainingFiles = []string{"a.csv", ""} },
			wantErr: "TrainingFiles",
		},
		{
			name:    "no training files without discovery",
			mutate:  func(c *Config) { c.Data.TrainingFiles = nil },
			wantErr: "discovery disabled",
		},
		{
			name: "no training files with discovery",
			mutate: func(c *Config) {
				c.Data.TrainingFiles = nil
				c.Data.Discover = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Data    DataConfig    `yaml:"data" envconfig:"DATA"`
	Columns ColumnsConfig `yaml:"columns" envconfig:"COLUMNS"`
	Split   SplitConfig   `yaml:"split" envconfig:"SPLIT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Explore ExploreConfig `yaml:"explore" envconfig:"EXPLORE"`
	Metrics MetricsConfig `yaml:"metrics" envconfig:"METRICS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// DataConfig names the input directory and the ordered file lists
type DataConfig struct {
	Dir           string   `yaml:"dir" envconfig:"DIR" validate:"required"`
	TrainingFiles []string `yaml:"training_files" envconfig:"TRAINING_FILES" validate:"dive,required"`
	TestFiles     []string `yaml:"test_files" envconfig:"TEST_FILES" validate:"dive,required"`
	// Discover uses every *.csv under Dir when TrainingFiles is empty
	Discover bool `yaml:"discover" envconfig:"DISCOVER"`
}

// ColumnsConfig is the positional column contract of the input files
type ColumnsConfig struct {
	FeatureStart int `yaml:"feature_start" envconfig:"FEATURE_START" validate:"gte=0"`
	FeatureEnd   int `yaml:"feature_end" envconfig:"FEATURE_END" validate:"gtfield=FeatureStart"`
	Target       int `yaml:"target" envconfig:"TARGET" validate:"gte=0"`
}

// SplitConfig contains the train/test split parameters
type SplitConfig struct {
	TestSize    float64 `yaml:"test_size" envconfig:"TEST_SIZE" validate:"gt=0,lt=1"`
	RandomState int64   `yaml:"random_state" envconfig:"RANDOM_STATE"`
}

// OutputConfig controls where prepared datasets are written
type OutputConfig struct {
	Dir    string `yaml:"dir" envconfig:"DIR" validate:"required"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=csv xlsx both"`
}

// ExploreConfig contains exploration settings
type ExploreConfig struct {
	ChartsDir         string `yaml:"charts_dir" envconfig:"CHARTS_DIR" validate:"required"`
	SampleSize        int    `yaml:"sample_size" envconfig:"SAMPLE_SIZE" validate:"gt=0"`
	DistributionFiles int    `yaml:"distribution_files" envconfig:"DISTRIBUTION_FILES" validate:"gte=0"`
	HistogramBins     int    `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" validate:"gt=0"`
}

// MetricsConfig contains batch metrics settings
type MetricsConfig struct {
	// TextfilePath is a Prometheus textfile-collector target; empty disables metrics output
	TextfilePath string `yaml:"textfile_path" envconfig:"TEXTFILE_PATH"`
}

// FeatureRange returns the configured feature columns
func (c ColumnsConfig) FeatureRange() domain.ColumnRange {
	return domain.ColumnRange{Start: c.FeatureStart, End: c.FeatureEnd}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or the first well-known location when path is empty), then environment
// variables, and validates the result. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg, err := LoadUnvalidated(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadUnvalidated is Load without the final validation, for callers that
// apply further overrides (command-line flags) before calling Validate.
func LoadUnvalidated(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getConfigFilePath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg; keys absent from the file keep their value
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the configuration
func (c *Config) Validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	c.Output.Format = strings.ToLower(c.Output.Format)

	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging output %q requires a file path", c.Logging.Output)
	}

	// The target may sit anywhere except inside the feature range
	if c.Columns.Target >= c.Columns.FeatureStart && c.Columns.Target < c.Columns.FeatureEnd {
		return fmt.Errorf("target column %d overlaps feature columns %s",
			c.Columns.Target, c.Columns.FeatureRange())
	}

	if len(c.Data.TrainingFiles) == 0 && !c.Data.Discover {
		return fmt.Errorf("no training files configured and discovery disabled")
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"velocity.yaml",
		"configs/velocity.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   "console",
			FilePath: DefaultLogsDir + "/velocity.log",
		},
		Data: DataConfig{
			Dir:           DefaultDataDir,
			TrainingFiles: append([]string(nil), DefaultTrainingFiles...),
			TestFiles:     append([]string(nil), DefaultTestFiles...),
		},
		Columns: ColumnsConfig{
			FeatureStart: DefaultFeatureStart,
			FeatureEnd:   DefaultFeatureEnd,
			Target:       DefaultTargetColumn,
		},
		Split: SplitConfig{
			TestSize:    DefaultTestSize,
			RandomState: DefaultRandomState,
		},
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			Format: "csv",
		},
		Explore: ExploreConfig{
			ChartsDir:         DefaultChartsDir,
			SampleSize:        DefaultSampleSize,
			DistributionFiles: DefaultDistributionFiles,
			HistogramBins:     DefaultHistogramBins,
		},
	}
}

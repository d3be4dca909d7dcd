// Package config loads the settings shared by every velocity command:
// where the simulation exports live, which files are training or held-out
// test data, the column layout, split parameters and logging.
//
// Defaults are applied first, then velocity.yaml (or configs/velocity.yaml,
// or the file given with --config), then VELOCITY_* environment variables.
// Command-line flags are applied by the cli package after LoadUnvalidated
// and before Validate, so they win over everything else.
//
// Environment variable names join the section and field:
//
//	VELOCITY_DATA_DIR=/mnt/simulations
//	VELOCITY_DATA_TRAINING_FILES=a.csv,b.csv
//	VELOCITY_COLUMNS_TARGET=6
//	VELOCITY_SPLIT_TEST_SIZE=0.25
//	VELOCITY_METRICS_TEXTFILE_PATH=/var/lib/node_exporter/velocity.prom
//
// Validate rejects a test size outside (0, 1), an empty feature range and a
// target column inside the feature range.
package config

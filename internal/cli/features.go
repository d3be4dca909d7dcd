package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/dataprocessing"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/exporter"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/validation"
)

type featureResult struct {
	file   string
	rows   int
	cols   int
	output string
}

// NewFeaturesCommand creates the features command.
func NewFeaturesCommand(global *globalFlags) *cobra.Command {
	var testFiles []string

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Extract feature columns from the held-out test files",
		Long: `Read each test file and write its feature columns to
<name>_features.csv in the output directory. Rows are kept as they are,
including rows with missing values. Any unreadable file fails the command.`,
		Example: `  velocity features
  velocity features --files velocity_test_1.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, global, func(cfg *config.Config) {
				if len(testFiles) > 0 {
					cfg.Data.TestFiles = testFiles
				}
			})
			if err != nil {
				return err
			}
			return runFeatures(cmd, rt)
		},
	}

	cmd.Flags().StringSliceVar(&testFiles, "files", nil, "test files to load instead of the configured list")

	return cmd
}

func runFeatures(cmd *cobra.Command, rt *runtime) error {
	if err := validation.NewFileValidator(rt.logger).ValidateOutputDirectory(rt.paths.OutputDir); err != nil {
		return err
	}

	loader := dataprocessing.NewLoader(rt.logger)
	writer := exporter.NewSplitWriter(rt.paths, rt.logger)
	features := rt.cfg.Columns.FeatureRange()

	results := make([]featureResult, 0, len(rt.cfg.Data.TestFiles))
	for _, name := range rt.cfg.Data.TestFiles {
		matrix, err := loader.LoadTestData(name, rt.paths.DataDir, features)
		if err != nil {
			return err
		}

		output, err := writer.WriteFeatures(FeaturesFileName(name), matrix)
		if err != nil {
			return err
		}

		rows, cols := matrix.Shape()
		results = append(results, featureResult{file: name, rows: rows, cols: cols, output: output})
	}

	renderFeatureFiles(cmd.OutOrStdout(), results)
	return nil
}

// FeaturesFileName maps a test file name to its feature export name
func FeaturesFileName(testFile string) string {
	base := filepath.Base(testFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_features.csv"
}

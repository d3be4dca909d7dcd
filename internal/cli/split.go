package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/dataprocessing"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/exporter"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/infrastructure"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/validation"
)

// WorkbookFile is the name of the XLSX export of a split
const WorkbookFile = "split.xlsx"

type splitFlags struct {
	testSize float64
	seed     int64
	format   string
	files    []string
	discover bool
}

// NewSplitCommand creates the split command.
func NewSplitCommand(global *globalFlags) *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Aggregate training files and write a train/test split",
		Long: `Load every training file from the data directory, skipping files that
cannot be read, drop rows with a missing coordinate or velocity, shuffle with
a fixed seed and write X_train, X_test, y_train and y_test.`,
		Example: `  velocity split
  velocity split --test-size 0.25 --seed 7 --format both
  velocity split --discover --data-dir /srv/sims`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, global, func(cfg *config.Config) {
				if cmd.Flags().Changed("test-size") {
					cfg.Split.TestSize = flags.testSize
				}
				if cmd.Flags().Changed("seed") {
					cfg.Split.RandomState = flags.seed
				}
				if flags.format != "" {
					cfg.Output.Format = flags.format
				}
				if len(flags.files) > 0 {
					cfg.Data.TrainingFiles = flags.files
				}
				if flags.discover {
					cfg.Data.Discover = true
					if len(flags.files) == 0 {
						cfg.Data.TrainingFiles = nil
					}
				}
			})
			if err != nil {
				return err
			}
			return runSplit(cmd, rt)
		},
	}

	cmd.Flags().Float64Var(&flags.testSize, "test-size", config.DefaultTestSize, "fraction of rows assigned to the test subset")
	cmd.Flags().Int64Var(&flags.seed, "seed", config.DefaultRandomState, "random state for the shuffle")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format (csv|xlsx|both)")
	cmd.Flags().StringSliceVar(&flags.files, "files", nil, "training files to load instead of the configured list")
	cmd.Flags().BoolVar(&flags.discover, "discover", false, "use every CSV in the data directory except the test files")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"csv", "xlsx", "both"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runSplit(cmd *cobra.Command, rt *runtime) error {
	started := time.Now()
	metrics := infrastructure.NewPipelineMetrics("split")
	defer finishMetrics(rt, metrics, started)

	out := cmd.OutOrStdout()

	result, err := loadTraining(rt, metrics)
	if result != nil {
		renderLoadResult(out, result)
	}
	if err != nil {
		return err
	}

	split, report, err := dataprocessing.NewPreparer(rt.logger).PrepareTrainingData(result.Combined, splitOptions(rt))
	if report != nil {
		metrics.RowsDropped.Set(float64(report.RowsDropped))
	}
	if err != nil {
		return err
	}
	metrics.SplitRows.WithLabelValues("train").Set(float64(len(split.TrainFeatures.Rows)))
	metrics.SplitRows.WithLabelValues("test").Set(float64(len(split.TestFeatures.Rows)))
	renderSplit(out, split, report)

	if err := validation.NewFileValidator(rt.logger).ValidateOutputDirectory(rt.paths.OutputDir); err != nil {
		return err
	}

	var written []string
	format := rt.cfg.Output.Format
	if format == "csv" || format == "both" {
		paths, err := exporter.NewSplitWriter(rt.paths, rt.logger).WriteSplit(rt.ctx, "", split)
		if err != nil {
			return err
		}
		written = append(written, paths...)
	}
	if format == "xlsx" || format == "both" {
		path, err := exporter.NewWorkbookWriter(rt.paths, rt.logger).WriteSplit(WorkbookFile, split)
		if err != nil {
			return err
		}
		written = append(written, path)
	}
	renderOutputs(out, written)

	rt.logger.Info("Split complete",
		slog.Int("train_rows", len(split.TrainFeatures.Rows)),
		slog.Int("test_rows", len(split.TestFeatures.Rows)),
		slog.Duration("duration", time.Since(started)))
	return nil
}

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/charts"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/dataprocessing"
)

// Chart file names written by explore
const (
	HistogramChart     = "velocity_histogram.png"
	SpatialChart       = "spatial_projection.png"
	DistributionsChart = "velocity_by_file.png"
)

// densityPoints is the grid size of per-file density curves
const densityPoints = 200

type exploreFlags struct {
	files      []string
	chartsDir  string
	sampleSize int
	noCharts   bool
}

// NewExploreCommand creates the explore command.
func NewExploreCommand(global *globalFlags) *cobra.Command {
	flags := &exploreFlags{}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Summarize the combined training data and render charts",
		Long: `Load the training files and print per-column statistics, missing value
counts and the correlation matrix. Unless --no-charts is given, also render a
velocity histogram, feature scatter plots and an x/y projection of a seeded
sample, and per-file velocity densities for the first files.`,
		Example: `  velocity explore
  velocity explore --files velocity_1.csv,velocity_2.csv --no-charts`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, global, func(cfg *config.Config) {
				if len(flags.files) > 0 {
					cfg.Data.TrainingFiles = flags.files
				}
				if flags.chartsDir != "" {
					cfg.Explore.ChartsDir = flags.chartsDir
				}
				if flags.sampleSize > 0 {
					cfg.Explore.SampleSize = flags.sampleSize
				}
			})
			if err != nil {
				return err
			}
			return runExplore(cmd, rt, !flags.noCharts)
		},
	}

	cmd.Flags().StringSliceVar(&flags.files, "files", nil, "training files to load instead of the configured list")
	cmd.Flags().StringVar(&flags.chartsDir, "charts-dir", "", "directory charts are written to")
	cmd.Flags().IntVar(&flags.sampleSize, "sample-size", 0, "rows sampled for scatter plots")
	cmd.Flags().BoolVar(&flags.noCharts, "no-charts", false, "print statistics only")

	return cmd
}

func runExplore(cmd *cobra.Command, rt *runtime, withCharts bool) error {
	out := cmd.OutOrStdout()

	result, err := loadTraining(rt, nil)
	if result != nil {
		renderLoadResult(out, result)
	}
	if err != nil {
		return err
	}
	table := result.Combined

	renderSummary(out, dataprocessing.Describe(table))
	renderMissing(out, table.Header, dataprocessing.MissingCounts(table))

	if corr, err := dataprocessing.CorrelationMatrix(table); err != nil {
		rt.logger.Warn("Skipping correlation matrix", slog.String("error", err.Error()))
	} else {
		renderCorrelation(out, corr)
	}

	if !withCharts {
		return nil
	}

	written, err := renderCharts(rt, result)
	if err != nil {
		return err
	}
	renderOutputs(out, written)
	return nil
}

func renderCharts(rt *runtime, result *dataprocessing.LoadResult) ([]string, error) {
	opts := splitOptions(rt)
	table := result.Combined

	target, err := dataprocessing.SelectTarget(table, opts.Target)
	if err != nil {
		return nil, err
	}

	var written []string
	histogram := rt.paths.GetChartPath(HistogramChart)
	if err := charts.VelocityHistogram(target.Values, rt.cfg.Explore.HistogramBins, histogram); err != nil {
		return nil, err
	}
	written = append(written, histogram)

	sample := dataprocessing.Sample(table, rt.cfg.Explore.SampleSize, opts.RandomState)
	sampleFeatures, err := dataprocessing.SelectFeatures(sample, opts.Features)
	if err != nil {
		return nil, err
	}
	sampleTarget, err := dataprocessing.SelectTarget(sample, opts.Target)
	if err != nil {
		return nil, err
	}
	sampleFeatures, sampleTarget, _ = dataprocessing.NewMissingValueFilter().Drop(sampleFeatures, sampleTarget)

	scatters, err := charts.FeatureScatter(sampleFeatures, sampleTarget, rt.paths.ChartsDir)
	if err != nil {
		return nil, err
	}
	written = append(written, scatters...)

	if len(sampleFeatures.Columns) >= 2 {
		spatial := rt.paths.GetChartPath(SpatialChart)
		if err := charts.SpatialProjection(sampleFeatures, sampleTarget, spatial); err != nil {
			return nil, err
		}
		written = append(written, spatial)
	}

	if n := rt.cfg.Explore.DistributionFiles; n > 0 {
		perFile := result.PerFile()
		if len(perFile) > n {
			perFile = perFile[:n]
		}
		series := make([]charts.Series, 0, len(perFile))
		for _, t := range perFile {
			series = append(series, charts.Series{Name: t.Source, Values: t.Column(opts.Target)})
		}
		distributions := rt.paths.GetChartPath(DistributionsChart)
		if err := charts.FileDistributions(series, densityPoints, distributions); err != nil {
			rt.logger.Warn("Skipping per-file distributions", slog.String("error", err.Error()))
		} else {
			written = append(written, distributions)
		}
	}

	rt.logger.Info("Rendered charts",
		slog.String("directory", rt.paths.ChartsDir),
		slog.Int("count", len(written)))
	return written, nil
}

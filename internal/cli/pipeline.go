package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/dataprocessing"
	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/files"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/infrastructure"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/validation"
)

// trainingFiles returns the configured training files, or every CSV in the
// data directory except the test files when discovery is enabled and no
// files are configured.
func trainingFiles(rt *runtime) ([]string, error) {
	if len(rt.cfg.Data.TrainingFiles) > 0 {
		return rt.cfg.Data.TrainingFiles, nil
	}

	found, err := files.NewDiscovery(rt.paths.BaseDir).FindCSVFiles(rt.paths.DataDir)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to discover input files", err)
	}
	names := files.Exclude(files.Names(found), rt.cfg.Data.TestFiles)
	if len(names) == 0 {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("CSV files in %s", rt.paths.DataDir), apperrors.ErrNoFilesLoaded)
	}

	rt.logger.Info("Discovered training files",
		slog.String("directory", rt.paths.DataDir),
		slog.Int("count", len(names)))
	return names, nil
}

// loadTraining validates the data directory and aggregates the training files
func loadTraining(rt *runtime, metrics *infrastructure.PipelineMetrics) (*dataprocessing.LoadResult, error) {
	validator := validation.NewFileValidator(rt.logger)
	if _, err := validator.ValidateInputDirectory(rt.paths.DataDir, "*.csv"); err != nil {
		return nil, err
	}

	names, err := trainingFiles(rt)
	if err != nil {
		return nil, err
	}

	result, err := dataprocessing.NewLoader(rt.logger).LoadCSVFiles(names, rt.paths.DataDir)
	if metrics != nil && result != nil {
		metrics.FilesLoaded.Add(float64(result.LoadedCount()))
		metrics.FilesFailed.Add(float64(result.FailedCount()))
		rows, _ := result.Combined.Shape()
		metrics.RowsCombined.Set(float64(rows))
	}
	return result, err
}

// finishMetrics records run timing and writes the textfile if configured
func finishMetrics(rt *runtime, metrics *infrastructure.PipelineMetrics, started time.Time) {
	metrics.Finish(started)
	if err := metrics.WriteTextfile(rt.cfg.Metrics.TextfilePath); err != nil {
		rt.logger.Warn("Failed to write metrics",
			slog.String("path", rt.cfg.Metrics.TextfilePath),
			slog.String("error", err.Error()))
	}
}

func splitOptions(rt *runtime) dataprocessing.SplitOptions {
	return dataprocessing.SplitOptions{
		Features:    rt.cfg.Columns.FeatureRange(),
		Target:      rt.cfg.Columns.Target,
		TestSize:    rt.cfg.Split.TestSize,
		RandomState: rt.cfg.Split.RandomState,
	}
}

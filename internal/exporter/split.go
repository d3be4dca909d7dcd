package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// File names of an exported split
const (
	TrainFeaturesFile = "X_train.csv"
	TestFeaturesFile  = "X_test.csv"
	TrainTargetsFile  = "y_train.csv"
	TestTargetsFile   = "y_test.csv"
)

// SplitWriter exports train/test splits and feature matrices as CSV
type SplitWriter struct {
	csv    *CSVWriter
	logger *slog.Logger
}

// NewSplitWriter creates a split writer that resolves relative paths against
// the output directory of paths.
func NewSplitWriter(paths *config.Paths, logger *slog.Logger) *SplitWriter {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "exporter"))
	return &SplitWriter{
		csv:    NewCSVWriter(paths, logger),
		logger: logger,
	}
}

// WriteSplit writes the four subsets of split into dir concurrently and
// returns the written paths in the order X_train, X_test, y_train, y_test.
func (w *SplitWriter) WriteSplit(ctx context.Context, dir string, split *domain.SplitResult) ([]string, error) {
	jobs := []struct {
		name  string
		write func(path string) (string, error)
	}{
		{TrainFeaturesFile, func(path string) (string, error) { return w.writeMatrix(path, &split.TrainFeatures) }},
		{TestFeaturesFile, func(path string) (string, error) { return w.writeMatrix(path, &split.TestFeatures) }},
		{TrainTargetsFile, func(path string) (string, error) { return w.writeVector(path, &split.TrainTargets) }},
		{TestTargetsFile, func(path string) (string, error) { return w.writeVector(path, &split.TestTargets) }},
	}

	written := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := job.write(filepath.Join(dir, job.name))
			if err != nil {
				return apperrors.NewStorageError(fmt.Sprintf("failed to write %s", job.name), err).
					WithContext("file", job.name)
			}
			written[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// a partial split is not a split
		for _, path := range written {
			if path != "" {
				_ = os.Remove(path)
			}
		}
		return nil, err
	}

	w.logger.Info("Wrote split",
		slog.String("dir", filepath.Dir(written[0])),
		slog.Int("train_rows", len(split.TrainFeatures.Rows)),
		slog.Int("test_rows", len(split.TestFeatures.Rows)))
	return written, nil
}

// WriteFeatures writes a feature matrix to path and returns the resolved path
func (w *SplitWriter) WriteFeatures(path string, matrix *domain.FeatureMatrix) (string, error) {
	written, err := w.writeMatrix(path, matrix)
	if err != nil {
		return "", apperrors.NewStorageError(fmt.Sprintf("failed to write %s", path), err).
			WithContext("file", path)
	}
	w.logger.Info("Wrote features",
		slog.String("file", written),
		slog.Int("rows", len(matrix.Rows)))
	return written, nil
}

func (w *SplitWriter) writeMatrix(path string, matrix *domain.FeatureMatrix) (string, error) {
	stream, err := w.csv.CreateStreamWriter(path, matrix.Columns)
	if err != nil {
		return "", err
	}
	for _, row := range matrix.Rows {
		if err := stream.WriteFloats(row); err != nil {
			stream.Abort()
			return "", err
		}
	}
	return stream.Path(), stream.Close()
}

func (w *SplitWriter) writeVector(path string, vector *domain.TargetVector) (string, error) {
	stream, err := w.csv.CreateStreamWriter(path, []string{vector.Name})
	if err != nil {
		return "", err
	}
	cell := make([]float64, 1)
	for _, v := range vector.Values {
		cell[0] = v
		if err := stream.WriteFloats(cell); err != nil {
			stream.Abort()
			return "", err
		}
	}
	return stream.Path(), stream.Close()
}

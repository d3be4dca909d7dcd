package dataprocessing

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// Preparer turns a combined table into a train/test split
type Preparer struct {
	logger *slog.Logger
	filter *MissingValueFilter
}

// NewPreparer creates a preparer. A nil logger falls back to slog.Default().
func NewPreparer(logger *slog.Logger) *Preparer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preparer{
		logger: logger.With(slog.String("component", "preparer")),
		filter: NewMissingValueFilter(),
	}
}

// PrepareTrainingData extracts features and target from table, drops rows
// with any missing value and splits the rest with a seeded shuffle.
// The same table and options always produce the same split.
func (p *Preparer) PrepareTrainingData(table *domain.Table, opts SplitOptions) (*domain.SplitResult, *domain.MissingReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if table == nil {
		return nil, nil, apperrors.NewDataError("no table to prepare", apperrors.ErrNoValidRows)
	}

	features, err := SelectFeatures(table, opts.Features)
	if err != nil {
		return nil, nil, err
	}
	target, err := SelectTarget(table, opts.Target)
	if err != nil {
		return nil, nil, err
	}

	rows, cols := features.Shape()
	p.logger.Info("Features shape",
		slog.Int("rows", rows),
		slog.Int("columns", cols),
		slog.Any("features", features.Columns),
		slog.String("target", target.Name))

	features, target, report := p.filter.Drop(features, target)
	if report.HasMissing() {
		p.logger.Warn("Missing values found",
			slog.Any("feature_missing", report.FeatureMissing),
			slog.Int("target_missing", report.TargetMissing),
			slog.Int("rows_dropped", report.RowsDropped))
	}
	p.logger.Info("After dropping missing values",
		slog.Int("rows", len(features.Rows)),
		slog.Int("rows_dropped", report.RowsDropped))

	if len(features.Rows) == 0 {
		return nil, report, apperrors.NewDataError(
			fmt.Sprintf("all %d rows of %s have missing values", report.RowsBefore, table.Source),
			apperrors.ErrNoValidRows)
	}

	split, err := TrainTestSplit(features, target, opts.TestSize, opts.RandomState)
	if err != nil {
		return nil, report, err
	}

	p.logger.Info("Split dataset",
		slog.Int("train_rows", len(split.TrainFeatures.Rows)),
		slog.Int("test_rows", len(split.TestFeatures.Rows)),
		slog.Float64("test_size", opts.TestSize),
		slog.Int64("random_state", opts.RandomState))

	return split, report, nil
}

// TestCount returns how many of n rows go to the test subset: ceil(testSize*n).
func TestCount(n int, testSize float64) int {
	// The epsilon keeps products like 0.2*25 from rounding up past the exact value.
	return int(math.Ceil(testSize*float64(n) - 1e-9))
}

// TrainTestSplit shuffles row indices with a generator seeded by seed and
// assigns the first TestCount of them to the test subset, the rest to train.
// Subset rows follow the shuffled order.
func TrainTestSplit(features *domain.FeatureMatrix, target *domain.TargetVector, testSize float64, seed int64) (*domain.SplitResult, error) {
	if !(testSize > 0 && testSize < 1) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("test size %v", testSize), apperrors.ErrInvalidTestSize)
	}

	n := len(features.Rows)
	if n != target.Len() {
		return nil, apperrors.NewDataError(
			fmt.Sprintf("feature rows (%d) and target values (%d) differ", n, target.Len()), nil)
	}

	nTest := TestCount(n, testSize)
	nTrain := n - nTest
	if nTest < 1 || nTrain < 1 {
		return nil, apperrors.NewDataError(
			fmt.Sprintf("%d rows with test size %v gives %d train and %d test rows", n, testSize, nTrain, nTest),
			apperrors.ErrEmptySplit)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	result := &domain.SplitResult{
		TrainFeatures: domain.FeatureMatrix{Columns: append([]string(nil), features.Columns...), Rows: make([][]float64, 0, nTrain)},
		TestFeatures:  domain.FeatureMatrix{Columns: append([]string(nil), features.Columns...), Rows: make([][]float64, 0, nTest)},
		TrainTargets:  domain.TargetVector{Name: target.Name, Values: make([]float64, 0, nTrain)},
		TestTargets:   domain.TargetVector{Name: target.Name, Values: make([]float64, 0, nTest)},
	}

	for i, idx := range perm {
		if i < nTest {
			result.TestFeatures.Rows = append(result.TestFeatures.Rows, features.Rows[idx])
			result.TestTargets.Values = append(result.TestTargets.Values, target.Values[idx])
			continue
		}
		result.TrainFeatures.Rows = append(result.TrainFeatures.Rows, features.Rows[idx])
		result.TrainTargets.Values = append(result.TrainTargets.Values, target.Values[idx])
	}

	return result, nil
}

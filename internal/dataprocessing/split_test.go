package dataprocessing

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/shared/testutil"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

func loadFixture(t *testing.T, sizes ...int) *domain.Table {
	t.Helper()
	dir := t.TempDir()
	files := make([]string, len(sizes))
	for i, n := range sizes {
		files[i] = fmt.Sprintf("velocity_%d.csv", i+1)
		testutil.WriteVelocityCSV(t, dir, files[i], n, i*100)
	}
	logger, _ := testutil.NewTestLogger(t)
	result, err := NewLoader(logger).LoadCSVFiles(files, dir)
	require.NoError(t, err)
	return result.Combined
}

func rowKey(row []float64) string {
	return fmt.Sprintf("%.6f|%.6f|%.6f", row[0], row[1], row[2])
}

func TestPrepareTrainingDataEndToEnd(t *testing.T) {
	table := loadFixture(t, 10, 15)

	logger, handler := testutil.NewTestLogger(t)
	split, report, err := NewPreparer(logger).PrepareTrainingData(table, DefaultSplitOptions())
	require.NoError(t, err)

	assert.Len(t, split.TrainFeatures.Rows, 20)
	assert.Len(t, split.TestFeatures.Rows, 5)
	assert.Len(t, split.TrainTargets.Values, 20)
	assert.Len(t, split.TestTargets.Values, 5)
	assert.Equal(t, []string{"x-coordinate", "y-coordinate", "z-coordinate"}, split.TrainFeatures.Columns)
	assert.Equal(t, "velocity-magnitude", split.TestTargets.Name)
	assert.Zero(t, report.RowsDropped)
	assert.False(t, report.HasMissing())

	// disjoint subsets that together cover every input row
	seen := make(map[string]int)
	for _, row := range split.TrainFeatures.Rows {
		seen[rowKey(row)]++
	}
	for _, row := range split.TestFeatures.Rows {
		seen[rowKey(row)]++
	}
	assert.Len(t, seen, 25)
	for key, n := range seen {
		assert.Equal(t, 1, n, "row %s appears in both subsets", key)
	}

	// targets stay aligned with their feature rows
	check := func(features domain.FeatureMatrix, targets domain.TargetVector) {
		for i, row := range features.Rows {
			assert.InDelta(t, row[0]+2*row[1]+3*row[2], targets.Values[i], 1e-5)
		}
	}
	check(split.TrainFeatures, split.TrainTargets)
	check(split.TestFeatures, split.TestTargets)

	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Features shape")
	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Split dataset")
}

func TestPrepareTrainingDataDeterministic(t *testing.T) {
	table := loadFixture(t, 10, 15)
	preparer := NewPreparer(nil)

	first, _, err := preparer.PrepareTrainingData(table, DefaultSplitOptions())
	require.NoError(t, err)
	second, _, err := preparer.PrepareTrainingData(table, DefaultSplitOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	opts := DefaultSplitOptions()
	opts.RandomState = 7
	other, _, err := preparer.PrepareTrainingData(table, opts)
	require.NoError(t, err)
	assert.NotEqual(t, first.TestFeatures.Rows, other.TestFeatures.Rows)
}

func TestPrepareTrainingDataDropsMissing(t *testing.T) {
	dir := t.TempDir()
	rows := testutil.VelocityRows(10, 0)
	rows[1][1] = "NA"  // feature
	rows[4][3] = ""    // feature
	rows[7][6] = "nan" // target
	rows[8][4] = ""    // pressure, not selected
	testutil.WriteCSV(t, dir, "velocity.csv", testutil.VelocityHeader, rows)

	table, err := ParseFile(filepath.Join(dir, "velocity.csv"))
	require.NoError(t, err)

	logger, handler := testutil.NewTestLogger(t)
	split, report, err := NewPreparer(logger).PrepareTrainingData(table, DefaultSplitOptions())
	require.NoError(t, err)

	assert.Equal(t, 10, report.RowsBefore)
	assert.Equal(t, 3, report.RowsDropped)
	assert.Equal(t, 1, report.FeatureMissing["x-coordinate"])
	assert.Equal(t, 1, report.FeatureMissing["z-coordinate"])
	assert.Equal(t, 0, report.FeatureMissing["y-coordinate"])
	assert.Equal(t, 1, report.TargetMissing)

	// 7 rows left: ceil(0.2*7) = 2 test rows
	assert.Len(t, split.TestFeatures.Rows, 2)
	assert.Len(t, split.TrainFeatures.Rows, 5)
	for _, subset := range [][][]float64{split.TrainFeatures.Rows, split.TestFeatures.Rows} {
		for _, row := range subset {
			for _, v := range row {
				assert.False(t, math.IsNaN(v))
			}
		}
	}
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "Missing values found")
}

func TestPrepareTrainingDataErrors(t *testing.T) {
	preparer := NewPreparer(nil)

	t.Run("all rows missing", func(t *testing.T) {
		nan := math.NaN()
		table := &domain.Table{
			Header: testutil.VelocityHeader,
			Rows: [][]float64{
				{1, nan, 2, 3, 0, 0, 4},
				{2, 1, 2, 3, 0, 0, nan},
			},
		}
		_, report, err := preparer.PrepareTrainingData(table, DefaultSplitOptions())
		assert.ErrorIs(t, err, apperrors.ErrNoValidRows)
		require.NotNil(t, report)
		assert.Equal(t, 2, report.RowsDropped)
	})

	t.Run("single row", func(t *testing.T) {
		table := &domain.Table{
			Header: testutil.VelocityHeader,
			Rows:   [][]float64{{1, 1, 2, 3, 0, 0, 4}},
		}
		_, _, err := preparer.PrepareTrainingData(table, DefaultSplitOptions())
		assert.ErrorIs(t, err, apperrors.ErrEmptySplit)
	})

	t.Run("target out of range", func(t *testing.T) {
		table := &domain.Table{
			Header: []string{"n", "x", "y", "z", "p"},
			Rows:   [][]float64{{1, 2, 3, 4, 5}},
		}
		_, _, err := preparer.PrepareTrainingData(table, DefaultSplitOptions())
		assert.ErrorIs(t, err, apperrors.ErrColumnOutOfRange)
	})

	t.Run("features out of range", func(t *testing.T) {
		opts := DefaultSplitOptions()
		opts.Features = domain.ColumnRange{Start: 5, End: 9}
		opts.Target = 0
		table := loadFixture(t, 5)
		_, _, err := preparer.PrepareTrainingData(table, opts)
		assert.ErrorIs(t, err, apperrors.ErrColumnOutOfRange)
	})

	t.Run("target inside feature range", func(t *testing.T) {
		opts := DefaultSplitOptions()
		opts.Target = 2
		_, _, err := preparer.PrepareTrainingData(loadFixture(t, 5), opts)
		assert.Equal(t, apperrors.ErrTypeValidation, apperrors.TypeOf(err))
	})

	for _, size := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		t.Run(fmt.Sprintf("test size %v", size), func(t *testing.T) {
			opts := DefaultSplitOptions()
			opts.TestSize = size
			_, _, err := preparer.PrepareTrainingData(loadFixture(t, 5), opts)
			assert.ErrorIs(t, err, apperrors.ErrInvalidTestSize)
		})
	}
}

func TestTestCount(t *testing.T) {
	tests := []struct {
		n        int
		testSize float64
		want     int
	}{
		{n: 25, testSize: 0.2, want: 5},
		{n: 10, testSize: 0.25, want: 3},
		{n: 7, testSize: 0.2, want: 2},
		{n: 3, testSize: 0.5, want: 2},
		{n: 100, testSize: 0.3, want: 30},
		{n: 1, testSize: 0.2, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TestCount(tt.n, tt.testSize), "n=%d test_size=%v", tt.n, tt.testSize)
	}
}

func TestTrainTestSplitFollowsSeededPermutation(t *testing.T) {
	n := 12
	features := &domain.FeatureMatrix{Columns: []string{"i"}}
	target := &domain.TargetVector{Name: "t"}
	for i := 0; i < n; i++ {
		features.Rows = append(features.Rows, []float64{float64(i)})
		target.Values = append(target.Values, float64(i*10))
	}

	split, err := TrainTestSplit(features, target, 0.25, 42)
	require.NoError(t, err)

	perm := rand.New(rand.NewSource(42)).Perm(n)
	for i, idx := range perm[:3] {
		assert.Equal(t, float64(idx), split.TestFeatures.Rows[i][0])
		assert.Equal(t, float64(idx*10), split.TestTargets.Values[i])
	}
	for i, idx := range perm[3:] {
		assert.Equal(t, float64(idx), split.TrainFeatures.Rows[i][0])
	}
}

func TestTrainTestSplitLengthMismatch(t *testing.T) {
	features := &domain.FeatureMatrix{Columns: []string{"x"}, Rows: [][]float64{{1}, {2}}}
	target := &domain.TargetVector{Name: "t", Values: []float64{1}}
	_, err := TrainTestSplit(features, target, 0.5, 1)
	assert.Equal(t, apperrors.ErrTypeData, apperrors.TypeOf(err))
}

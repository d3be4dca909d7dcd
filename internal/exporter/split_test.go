package exporter

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/shared/testutil"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

func sampleSplit() *domain.SplitResult {
	columns := []string{"x-coordinate", "y-coordinate", "z-coordinate"}
	return &domain.SplitResult{
		TrainFeatures: domain.FeatureMatrix{Columns: columns, Rows: [][]float64{{1, 2, 3}, {4, 5, 6}, {0.125, 0.5, 1e-7}}},
		TestFeatures:  domain.FeatureMatrix{Columns: columns, Rows: [][]float64{{7, 8, 9}}},
		TrainTargets:  domain.TargetVector{Name: "velocity-magnitude", Values: []float64{14, 32, 1.125}},
		TestTargets:   domain.TargetVector{Name: "velocity-magnitude", Values: []float64{50}},
	}
}

func TestSplitWriter_WriteSplit(t *testing.T) {
	dir := t.TempDir()
	logger, handler := testutil.NewTestLogger(t)
	writer := NewSplitWriter(nil, logger)
	split := sampleSplit()

	files, err := writer.WriteSplit(context.Background(), dir, split)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, TrainFeaturesFile),
		filepath.Join(dir, TestFeaturesFile),
		filepath.Join(dir, TrainTargetsFile),
		filepath.Join(dir, TestTargetsFile),
	}, files)

	xTrain := readCSV(t, files[0])
	require.Len(t, xTrain, 4)
	assert.Equal(t, split.TrainFeatures.Columns, xTrain[0])
	for i, record := range xTrain[1:] {
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err)
			assert.Equal(t, split.TrainFeatures.Rows[i][j], v, "round trip row %d col %d", i, j)
		}
	}

	assert.Equal(t, [][]string{{"x-coordinate", "y-coordinate", "z-coordinate"}, {"7", "8", "9"}}, readCSV(t, files[1]))
	assert.Equal(t, [][]string{{"velocity-magnitude"}, {"14"}, {"32"}, {"1.125"}}, readCSV(t, files[2]))
	assert.Equal(t, [][]string{{"velocity-magnitude"}, {"50"}}, readCSV(t, files[3]))

	assert.True(t, handler.ContainsMessage("Wrote split"))
	testutil.AssertLogAttr(t, handler, "component", "exporter")
}

func TestSplitWriter_RelativeDir(t *testing.T) {
	base := t.TempDir()
	paths := &config.Paths{BaseDir: base, OutputDir: filepath.Join(base, "output")}
	writer := NewSplitWriter(paths, nil)

	files, err := writer.WriteSplit(context.Background(), "run1", sampleSplit())
	require.NoError(t, err)
	for _, f := range files {
		assert.Equal(t, filepath.Join(base, "output", "run1"), filepath.Dir(f))
		assert.FileExists(t, f)
	}
}

func TestSplitWriter_Errors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	writer := NewSplitWriter(nil, nil)

	t.Run("unwritable dir", func(t *testing.T) {
		_, err := writer.WriteSplit(context.Background(), blocker, sampleSplit())
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrTypeStorage, apperrors.TypeOf(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := writer.WriteSplit(ctx, filepath.Join(dir, "cancelled"), sampleSplit())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSplitWriter_FailureRemovesSiblings(t *testing.T) {
	dir := t.TempDir()
	// a non-empty directory under the X_test name makes that rename fail
	require.NoError(t, os.MkdirAll(filepath.Join(dir, TestFeaturesFile, "keep"), 0755))
	writer := NewSplitWriter(nil, nil)

	files, err := writer.WriteSplit(context.Background(), dir, sampleSplit())
	require.Error(t, err)
	assert.Nil(t, files)
	assert.Equal(t, apperrors.ErrTypeStorage, apperrors.TypeOf(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{TestFeaturesFile}, names, "only the pre-existing directory may remain")
}

func TestSplitWriter_WriteFeatures(t *testing.T) {
	dir := t.TempDir()
	writer := NewSplitWriter(nil, nil)
	matrix := &domain.FeatureMatrix{
		Columns: []string{"x", "y"},
		Rows:    [][]float64{{1, math.NaN()}, {2.5, 3}},
	}

	path, err := writer.WriteFeatures(filepath.Join(dir, "test_features.csv"), matrix)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y"}, {"1", ""}, {"2.5", "3"}}, readCSV(t, path))
}

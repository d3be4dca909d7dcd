package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// Sheet names of an exported split workbook
const (
	TrainFeaturesSheet = "X_train"
	TestFeaturesSheet  = "X_test"
	TrainTargetsSheet  = "y_train"
	TestTargetsSheet   = "y_test"
)

// WorkbookWriter exports a train/test split as a single XLSX workbook
type WorkbookWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer
func NewWorkbookWriter(paths *config.Paths, logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{paths: paths, logger: logger.With(slog.String("component", "exporter"))}
}

// WriteSplit writes one sheet per subset to path and returns the resolved path
func (w *WorkbookWriter) WriteSplit(path string, split *domain.SplitResult) (string, error) {
	if !filepath.IsAbs(path) && w.paths != nil {
		path = w.paths.GetOutputPath(path)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		headers []string
		rows    int
		row     func(i int) []float64
	}{
		{TrainFeaturesSheet, split.TrainFeatures.Columns, len(split.TrainFeatures.Rows), func(i int) []float64 { return split.TrainFeatures.Rows[i] }},
		{TestFeaturesSheet, split.TestFeatures.Columns, len(split.TestFeatures.Rows), func(i int) []float64 { return split.TestFeatures.Rows[i] }},
		{TrainTargetsSheet, []string{split.TrainTargets.Name}, split.TrainTargets.Len(), func(i int) []float64 { return split.TrainTargets.Values[i : i+1] }},
		{TestTargetsSheet, []string{split.TestTargets.Name}, split.TestTargets.Len(), func(i int) []float64 { return split.TestTargets.Values[i : i+1] }},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return "", w.storageError(path, err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return "", w.storageError(path, err)
		}

		sw, err := f.NewStreamWriter(sheet.name)
		if err != nil {
			return "", w.storageError(path, err)
		}
		if err := sw.SetRow("A1", stringCells(sheet.headers)); err != nil {
			return "", w.storageError(path, err)
		}
		for r := 0; r < sheet.rows; r++ {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return "", w.storageError(path, err)
			}
			if err := sw.SetRow(cell, floatCells(sheet.row(r))); err != nil {
				return "", w.storageError(path, err)
			}
		}
		if err := sw.Flush(); err != nil {
			return "", w.storageError(path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", w.storageError(path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", w.storageError(path, err)
	}

	w.logger.Info("Wrote workbook",
		slog.String("file", path),
		slog.Int("sheets", len(sheets)))
	return path, nil
}

func (w *WorkbookWriter) storageError(path string, err error) error {
	return apperrors.NewStorageError(fmt.Sprintf("failed to write workbook %s", path), err).
		WithContext("file", path)
}

func stringCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// floatCells leaves missing values as empty cells
func floatCells(values []float64) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		if domain.IsMissing(v) {
			continue
		}
		cells[i] = v
	}
	return cells
}

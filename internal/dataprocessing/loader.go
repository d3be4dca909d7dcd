package dataprocessing

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// Loader reads velocity CSV files from a data directory
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "loader"))}
}

// LoadCSVFiles reads each named file from dataDir and concatenates the rows
// in input-list order. A file that is missing, unreadable, malformed, or whose
// column count differs from the first loaded file is logged and skipped.
// An error wrapping ErrNoFilesLoaded is returned only when no file loaded.
func (l *Loader) LoadCSVFiles(files []string, dataDir string) (*LoadResult, error) {
	result := &LoadResult{Files: make([]FileResult, 0, len(files))}
	tables := make([]*domain.Table, 0, len(files))
	var failures []error

	for _, name := range files {
		path := filepath.Join(dataDir, name)
		fr := FileResult{Name: name, Path: path}

		table, err := ParseFile(path)
		if err == nil && len(tables) > 0 {
			err = checkSchema(tables[0], table, path)
		}
		if err != nil {
			fr.Err = err
			failures = append(failures, err)
			result.Files = append(result.Files, fr)
			l.logger.Error("Error loading file",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}

		fr.Rows, fr.Columns = table.Shape()
		result.Files = append(result.Files, fr)
		tables = append(tables, table)
		l.logger.Info("Loaded file",
			slog.String("file", name),
			slog.Int("rows", fr.Rows),
			slog.Int("columns", fr.Columns))
	}

	if len(tables) == 0 {
		cause := apperrors.Join(append([]error{apperrors.ErrNoFilesLoaded}, failures...)...)
		return result, apperrors.NewDataError(
			fmt.Sprintf("none of %d files in %s could be loaded", len(files), dataDir), cause).
			WithContext("data_dir", dataDir)
	}

	result.Combined = Concat(tables)
	rows, cols := result.Combined.Shape()
	l.logger.Info("Combined dataset",
		slog.Int("files", len(tables)),
		slog.Int("failed", len(failures)),
		slog.Int("rows", rows),
		slog.Int("columns", cols))

	return result, nil
}

// LoadTestData reads a single file and returns only its feature columns.
// Unlike LoadCSVFiles, any failure is returned to the caller.
func (l *Loader) LoadTestData(file, dataDir string, features domain.ColumnRange) (*domain.FeatureMatrix, error) {
	path := filepath.Join(dataDir, file)
	table, err := ParseFile(path)
	if err != nil {
		l.logger.Error("Error loading test file",
			slog.String("file", file),
			slog.String("error", err.Error()))
		return nil, err
	}

	matrix, err := SelectFeatures(table, features)
	if err != nil {
		return nil, err
	}

	rows, cols := matrix.Shape()
	l.logger.Info("Loaded test file",
		slog.String("file", file),
		slog.Int("rows", rows),
		slog.Int("features", cols))
	return matrix, nil
}

// Concat stacks tables vertically. All tables must share a column count;
// the header is taken from the first table.
func Concat(tables []*domain.Table) *domain.Table {
	if len(tables) == 0 {
		return &domain.Table{}
	}

	total := 0
	sources := make([]string, 0, len(tables))
	for _, t := range tables {
		total += len(t.Rows)
		sources = append(sources, t.Source)
	}

	combined := &domain.Table{
		Source: strings.Join(sources, ","),
		Header: append([]string(nil), tables[0].Header...),
		Rows:   make([][]float64, 0, total),
	}
	for _, t := range tables {
		combined.Rows = append(combined.Rows, t.Rows...)
	}
	return combined
}

// SelectFeatures copies the columns in r out of table
func SelectFeatures(table *domain.Table, r domain.ColumnRange) (*domain.FeatureMatrix, error) {
	_, cols := table.Shape()
	if err := r.Validate(cols); err != nil {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("feature columns %s for %s", r, table.Source),
			fmt.Errorf("%w: %v", apperrors.ErrColumnOutOfRange, err))
	}

	matrix := &domain.FeatureMatrix{
		Columns: append([]string(nil), table.Header[r.Start:r.End]...),
		Rows:    make([][]float64, len(table.Rows)),
	}
	for i, row := range table.Rows {
		matrix.Rows[i] = append([]float64(nil), row[r.Start:r.End]...)
	}
	return matrix, nil
}

// SelectTarget copies the column at idx out of table
func SelectTarget(table *domain.Table, idx int) (*domain.TargetVector, error) {
	_, cols := table.Shape()
	if idx < 0 || idx >= cols {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("target column %d for %s", idx, table.Source),
			fmt.Errorf("%w: %d available columns", apperrors.ErrColumnOutOfRange, cols))
	}
	return &domain.TargetVector{
		Name:   table.Header[idx],
		Values: table.Column(idx),
	}, nil
}

func checkSchema(first, next *domain.Table, path string) error {
	if len(next.Header) == len(first.Header) {
		return nil
	}
	return apperrors.NewParsingError(
		fmt.Sprintf("file %s has %d columns, expected %d", path, len(next.Header), len(first.Header)),
		apperrors.ErrSchemaMismatch).WithContext("file", path)
}

package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
)

// CSVWriter opens dataset files for streaming. Relative paths resolve
// against the output directory; with nil paths they are used as given.
type CSVWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer
func NewCSVWriter(paths *config.Paths, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{paths: paths, logger: logger}
}

// StreamWriter writes rows to a temporary file next to the destination.
// Close renames it into place, so a failed export never leaves a truncated
// file under the final name.
type StreamWriter struct {
	path   string
	tmp    *os.File
	writer *csv.Writer
	record []string
	rows   int
}

// CreateStreamWriter starts a file at filePath and writes header unless it is empty
func (w *CSVWriter) CreateStreamWriter(filePath string, header []string) (*StreamWriter, error) {
	path := w.resolvePath(filePath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	// CreateTemp uses 0600
	_ = tmp.Chmod(0644)

	s := &StreamWriter{path: path, tmp: tmp, writer: csv.NewWriter(tmp)}
	if len(header) > 0 {
		if err := s.writer.Write(header); err != nil {
			s.Abort()
			return nil, fmt.Errorf("failed to write header of %s: %w", path, err)
		}
	}

	w.logger.Debug("Opened CSV stream", slog.String("file", path), slog.Int("columns", len(header)))
	return s, nil
}

// WriteRecord appends one row of cells
func (s *StreamWriter) WriteRecord(record []string) error {
	if err := s.writer.Write(record); err != nil {
		return err
	}
	s.rows++
	return nil
}

// WriteFloats appends one numeric row. NaN is written as an empty cell.
func (s *StreamWriter) WriteFloats(row []float64) error {
	s.record = formatRow(s.record, row)
	return s.WriteRecord(s.record)
}

// Path is the final destination of the stream
func (s *StreamWriter) Path() string {
	return s.path
}

// Rows counts records written after the header
func (s *StreamWriter) Rows() int {
	return s.rows
}

// Close flushes the rows and moves the file to its destination. On error
// the temporary file is removed.
func (s *StreamWriter) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.Abort()
		return err
	}
	if err := s.tmp.Close(); err != nil {
		_ = os.Remove(s.tmp.Name())
		return err
	}
	if err := os.Rename(s.tmp.Name(), s.path); err != nil {
		_ = os.Remove(s.tmp.Name())
		return err
	}
	return nil
}

// Abort discards everything written so far
func (s *StreamWriter) Abort() {
	_ = s.tmp.Close()
	_ = os.Remove(s.tmp.Name())
}

func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.paths == nil {
		return filePath
	}
	return w.paths.GetOutputPath(filePath)
}

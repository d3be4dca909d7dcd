// Package validation checks input and output locations before a command
// starts reading or writing datasets.
package validation

import (
	"encoding/csv"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
)

// FileValidator runs filesystem preflight checks and logs what it finds
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a validator logging to logger, or slog.Default when nil
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateInputDirectory checks that dir is an existing directory and
// returns how many regular files in it match pattern. An empty pattern
// skips counting. No matches is logged as a warning, not returned.
func (v *FileValidator) ValidateInputDirectory(dir, pattern string) (int, error) {
	if err := v.requireDir(dir); err != nil {
		return 0, err
	}
	if pattern == "" {
		return 0, nil
	}

	count, err := v.CountFiles(dir, pattern)
	if err != nil {
		return 0, err
	}

	log := v.logger.With(slog.String("directory", dir), slog.String("pattern", pattern))
	if count == 0 {
		log.Warn("No files matching pattern found")
	} else {
		log.Info("Input directory validated", slog.Int("files_found", count))
	}
	return count, nil
}

func (v *FileValidator) requireDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errorsIsNotExist(err):
		v.logger.Error("Input directory does not exist", slog.String("directory", dir))
		return apperrors.NewNotFoundError("input directory "+dir, err)
	case err != nil:
		v.logger.Error("Failed to stat input directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError("failed to stat directory "+dir, err)
	case !info.IsDir():
		v.logger.Error("Input path is not a directory", slog.String("path", dir))
		return apperrors.NewValidationError(dir+" is not a directory", nil)
	}
	return nil
}

// ValidateOutputDirectory creates dir if needed and proves it is writable
// by creating and removing a temporary file.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError("failed to create output directory "+dir, err)
	}

	probe, err := os.CreateTemp(dir, ".velocity-write-*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewPermissionError("output directory "+dir+" is not writable", err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	v.logger.Debug("Output directory validated", slog.String("directory", dir))
	return nil
}

// ValidateFile checks that path names a readable regular file
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		v.logger.Error("Cannot stat file", slog.String("file", path), slog.String("error", err.Error()))
		return apperrors.FromFileError(path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file", slog.String("path", path))
		return apperrors.NewValidationError(path+" is a directory, not a file", nil)
	}

	f, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable", slog.String("file", path), slog.String("error", err.Error()))
		return apperrors.FromFileError(path, err)
	}
	_ = f.Close()

	v.logger.Debug("File validated", slog.String("file", path), slog.Int64("size", info.Size()))
	return nil
}

// CountFiles counts regular files in dir matching the glob pattern
func (v *FileValidator) CountFiles(dir, pattern string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return 0, apperrors.NewValidationError("invalid file pattern "+pattern, err)
	}

	n := 0
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
			n++
		}
	}
	return n, nil
}

// ValidateCSVFile checks that path is a readable .csv file and returns the
// width of its header row. A file without a header is a parsing error
// wrapping ErrEmptyFile.
func (v *FileValidator) ValidateCSVFile(path string) (int, error) {
	if err := v.ValidateFile(path); err != nil {
		return 0, err
	}
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".csv") {
		return 0, apperrors.NewValidationError(path+" is not a CSV file", nil).
			WithContext("extension", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, apperrors.FromFileError(path, err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err == io.EOF {
		err = apperrors.ErrEmptyFile
	}
	if err != nil {
		return 0, apperrors.FromFileError(path, err)
	}
	return len(header), nil
}

func errorsIsNotExist(err error) bool {
	return apperrors.Is(err, fs.ErrNotExist)
}

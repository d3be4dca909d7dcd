package errors

import (
	stderrors "errors"
	"io/fs"
)

// Sentinel causes. AppErrors wrap these so callers can match with errors.Is.
var (
	ErrNoFilesLoaded    = stderrors.New("no CSV files were successfully loaded")
	ErrNoValidRows      = stderrors.New("no rows left after dropping missing values")
	ErrEmptySplit       = stderrors.New("train/test split would leave a subset empty")
	ErrColumnOutOfRange = stderrors.New("column selection out of range")
	ErrInvalidTestSize  = stderrors.New("test size must be within (0, 1)")
	ErrEmptyFile        = stderrors.New("file has no header row")
	ErrSchemaMismatch   = stderrors.New("column count differs from previously loaded files")
)

// Is is stdlib errors.Is, re-exported so callers importing this package
// under the name errors keep a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Join is stdlib errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// As is stdlib errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// TypeOf returns the ErrorType of the first AppError in err's chain, or ""
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// FromFileError classifies an error returned while opening or reading path.
func FromFileError(path string, err error) *AppError {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return NewNotFoundError("file "+path, err).WithContext("file", path)
	case stderrors.Is(err, fs.ErrPermission):
		return NewPermissionError("cannot read file "+path, err).WithContext("file", path)
	default:
		return NewParsingError("failed to parse file "+path, err).WithContext("file", path)
	}
}

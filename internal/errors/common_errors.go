package errors

import (
	"fmt"
	"log/slog"
	"sort"
)

// ErrorType classifies an AppError for exit codes and log filtering
type ErrorType string

const (
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypePermission ErrorType = "PERMISSION"
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeData       ErrorType = "DATA"
)

// exitCodes follow the BSD sysexits convention where one fits
var exitCodes = map[ErrorType]int{
	ErrTypeConfig:     78, // EX_CONFIG
	ErrTypeValidation: 64, // EX_USAGE
	ErrTypeNotFound:   66, // EX_NOINPUT
	ErrTypeParsing:    65, // EX_DATAERR
	ErrTypeData:       65,
	ErrTypePermission: 77, // EX_NOPERM
	ErrTypeStorage:    74, // EX_IOERR
}

// AppError is a classified error with optional key/value context such as
// the file being read or written.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext records key=value on the error and returns it for chaining
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// LogValue renders the error as a slog group: type, message, cause and
// every context key in sorted order.
func (e *AppError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", string(e.Type)),
		slog.String("message", e.Message),
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, e.Context[k]))
	}
	return slog.GroupValue(attrs...)
}

// NewAppError builds an AppError. cause may be nil.
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{Type: errType, Message: message, Cause: cause}
}

func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewNotFoundError formats message as "<resource> not found"
func NewNotFoundError(resource string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, resource+" not found", cause)
}

func NewPermissionError(message string, cause error) *AppError {
	return NewAppError(ErrTypePermission, message, cause)
}

func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewDataError is for inputs that parsed but cannot produce a usable dataset
func NewDataError(message string, cause error) *AppError {
	return NewAppError(ErrTypeData, message, cause)
}

// ExitCode maps err to a process exit status: 0 for nil, a sysexits code
// for a classified error and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[TypeOf(err)]; ok {
		return code
	}
	return 1
}

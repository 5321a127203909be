package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error codes reported by the loader.
const (
	CodeFileNotFound   = "FILE_NOT_FOUND"
	CodeReadFailed     = "READ_FAILED"
	CodeMissingColumns = "MISSING_COLUMNS"
	CodeEmptySheet     = "EMPTY_SHEET"
	CodeWriteFailed    = "WRITE_FAILED"
	CodeInvalidConfig  = "INVALID_CONFIG"
	CodeStepFailed     = "STEP_FAILED"
)

// LoaderError is a structured error carrying a stable code and the file it concerns.
type LoaderError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Path    string      `json:"path,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

// Error implements the error interface
func (e *LoaderError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap allows errors.Is and errors.As to reach the cause
func (e *LoaderError) Unwrap() error {
	return e.Err
}

// Is matches another LoaderError by code, so sentinel values work with errors.Is.
func (e *LoaderError) Is(target error) bool {
	t, ok := target.(*LoaderError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Path == "" || t.Path == e.Path)
}

// New creates a new LoaderError with the given parameters
func New(code, message string) *LoaderError {
	return &LoaderError{Code: code, Message: message}
}

// Wrap creates a LoaderError around a cause
func Wrap(code, message string, err error) *LoaderError {
	return &LoaderError{Code: code, Message: message, Err: err}
}

// Sentinels for errors.Is checks.
var (
	ErrFileNotFound   = New(CodeFileNotFound, "file not found")
	ErrReadFailed     = New(CodeReadFailed, "failed to read file")
	ErrMissingColumns = New(CodeMissingColumns, "required columns missing")
	ErrEmptySheet     = New(CodeEmptySheet, "sheet has no header row")
	ErrWriteFailed    = New(CodeWriteFailed, "failed to write output")
	ErrInvalidConfig  = New(CodeInvalidConfig, "invalid configuration")
	ErrStepFailed     = New(CodeStepFailed, "pipeline step failed")
)

// FileNotFoundError creates a not found error for path
func FileNotFoundError(path string, err error) *LoaderError {
	return &LoaderError{Code: CodeFileNotFound, Message: "file not found", Path: path, Err: err}
}

// ReadError creates a read failure for path
func ReadError(path string, err error) *LoaderError {
	return &LoaderError{Code: CodeReadFailed, Message: "failed to read file", Path: path, Err: err}
}

// MissingColumnsError reports the required columns absent from path
func MissingColumnsError(path string, columns []string) *LoaderError {
	return &LoaderError{
		Code:    CodeMissingColumns,
		Message: fmt.Sprintf("required columns missing: %s", strings.Join(columns, ", ")),
		Path:    path,
		Details: columns,
	}
}

// EmptySheetError reports a sheet without a header row
func EmptySheetError(path string) *LoaderError {
	return &LoaderError{Code: CodeEmptySheet, Message: "sheet has no header row", Path: path}
}

// WriteError creates a write failure for path
func WriteError(path string, err error) *LoaderError {
	return &LoaderError{Code: CodeWriteFailed, Message: "failed to write output", Path: path, Err: err}
}

// ConfigError creates a configuration error
func ConfigError(message string, err error) *LoaderError {
	return &LoaderError{Code: CodeInvalidConfig, Message: message, Err: err}
}

// StepError wraps the failure of a named pipeline step
func StepError(stepID string, err error) *LoaderError {
	return &LoaderError{
		Code:    CodeStepFailed,
		Message: fmt.Sprintf("step %q failed", stepID),
		Details: stepID,
		Err:     err,
	}
}

// CodeOf returns the code of the innermost LoaderError other than a step wrapper,
// or "" when err carries none.
func CodeOf(err error) string {
	code := ""
	for err != nil {
		var le *LoaderError
		if !stderrors.As(err, &le) {
			break
		}
		code = le.Code
		if le.Code != CodeStepFailed {
			return code
		}
		err = le.Err
	}
	return code
}

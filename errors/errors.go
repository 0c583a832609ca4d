package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Retryable reports whether the failed operation may succeed if repeated.
func (e *AppError) Retryable() bool { return IsRetryableCode(e.Code) }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Corpus Error Constructors ---

// Configuration creates a new AppError for a static file that is missing or unreadable.
func Configuration(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: fmt.Sprintf("cannot read %s", path),
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// DuplicateIdentifier creates a new AppError for conflicting rows sharing one unique name.
func DuplicateIdentifier(id string) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateIdentifier, Message: fmt.Sprintf("conflicting records for %q", id),
		Details: map[string]any{"unique_name": id},
	}
}

// UnknownChannelCode creates a new AppError for a channel symbol with no mapping.
func UnknownChannelCode(id, code string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownChannelCode, Message: fmt.Sprintf("unknown channel code %q for %q", code, id),
		Details: map[string]any{"unique_name": id, "channel": code},
	}
}

// UnknownIdentifier creates a new AppError for a listed identifier absent from the key table.
func UnknownIdentifier(id, list string) *AppError {
	details := map[string]any{"unique_name": id}
	if list != "" {
		details["list"] = list
	}
	return &AppError{
		Code: ErrCodeUnknownIdentifier, Message: fmt.Sprintf("identifier %q has no metadata record", id),
		Details: details,
	}
}

// MalformedTrialMatrix creates a new AppError for a trial file that does not fit its axes.
func MalformedTrialMatrix(path, reason string) *AppError {
	return &AppError{
		Code: ErrCodeMalformedTrialMatrix, Message: fmt.Sprintf("%s: %s", path, reason),
		Details: map[string]any{"path": path},
	}
}

// MalformedKeyFile creates a new AppError for an unparsable key file row.
func MalformedKeyFile(path string, line int, reason string) *AppError {
	return &AppError{
		Code: ErrCodeMalformedKeyFile, Message: fmt.Sprintf("%s:%d: %s", path, line, reason),
		Details: map[string]any{"path": path, "line": line},
	}
}

// --- Common Error Constructors ---

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		Details: details,
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}

// --- Inspection helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err, or any error it wraps, is an AppError with code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsRetryable reports whether err is an AppError with a retryable code.
func IsRetryable(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Retryable()
}

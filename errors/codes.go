package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Corpus packaging errors. These indicate a defect in the static data and
// are fatal to the operation that raised them.
const (
	// ErrCodeConfiguration indicates a missing or unreadable static file.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeDuplicateIdentifier indicates two conflicting rows share a unique name.
	ErrCodeDuplicateIdentifier ErrorCode = "DUPLICATE_IDENTIFIER"
	// ErrCodeUnknownChannelCode indicates a channel symbol outside {a, b, x}.
	ErrCodeUnknownChannelCode ErrorCode = "UNKNOWN_CHANNEL_CODE"
	// ErrCodeUnknownIdentifier indicates an identifier list references a missing record.
	ErrCodeUnknownIdentifier ErrorCode = "UNKNOWN_IDENTIFIER"
	// ErrCodeMalformedTrialMatrix indicates a dimension or value mismatch in a trial file.
	ErrCodeMalformedTrialMatrix ErrorCode = "MALFORMED_TRIAL_MATRIX"
	// ErrCodeMalformedKeyFile indicates a key file row that cannot be parsed.
	ErrCodeMalformedKeyFile ErrorCode = "MALFORMED_KEY_FILE"
)

// Caller errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure, e.g. in an export sink.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConfiguration:        false,
	ErrCodeDuplicateIdentifier:  false,
	ErrCodeUnknownChannelCode:   false,
	ErrCodeUnknownIdentifier:    false,
	ErrCodeMalformedTrialMatrix: false,
	ErrCodeMalformedKeyFile:     false,
	ErrCodeInternal:             false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

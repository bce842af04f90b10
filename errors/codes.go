package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeUnknownStage indicates a pipeline stage type is not known.
	ErrCodeUnknownStage ErrorCode = "UNKNOWN_STAGE"
)

// Programming errors
const (
	// ErrCodeContractViolation indicates a transducer or reducer was built or
	// used outside its documented contract.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
)

// I/O errors (mostly retryable)
const (
	// ErrCodeConnectionFailed indicates a failed connection to a backing store.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeSinkFailed indicates writing to an output sink failed.
	ErrCodeSinkFailed ErrorCode = "SINK_FAILED"
	// ErrCodeSourceFailed indicates reading from an input source failed.
	ErrCodeSourceFailed ErrorCode = "SOURCE_FAILED"
	// ErrCodeCanceled indicates the run was canceled by its context.
	ErrCodeCanceled ErrorCode = "CANCELED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeSinkFailed:       true,
	ErrCodeSourceFailed:     true,
	ErrCodeInternal:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

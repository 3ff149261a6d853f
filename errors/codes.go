package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Stream errors
const (
	// ErrCodeEmptyStream indicates head, tail or positional access on an empty stream.
	ErrCodeEmptyStream ErrorCode = "EMPTY_STREAM"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates an argument is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidConfig indicates the loaded configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Runtime errors
const (
	// ErrCodeTimeout indicates consumption was cut short by a deadline or cancellation.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// exitCodes maps codes to process exit statuses, following the sysexits.h
// convention where one applies.
var exitCodes = map[ErrorCode]int{
	ErrCodeEmptyStream:   1,
	ErrCodeInvalidInput:  64, // EX_USAGE
	ErrCodeNotFound:      64,
	ErrCodeInvalidConfig: 78, // EX_CONFIG
	ErrCodeTimeout:       75, // EX_TEMPFAIL
	ErrCodeInternal:      70, // EX_SOFTWARE
}

// ExitCodeFor returns the process exit status for a code. Unknown codes map to 1.
func ExitCodeFor(code ErrorCode) int {
	if status, ok := exitCodes[code]; ok {
		return status
	}
	return 1
}

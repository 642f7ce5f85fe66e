package errors

// PlatformError is an error with a code, a retry classification, a message,
// context metadata and an optional cause.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}

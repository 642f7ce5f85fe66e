package errors

import "fmt"

// New creates a PlatformError with the default classification for code.
//
//	err := errors.New(errors.CodeUnsupported, "symbolic links are not supported")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a PlatformError with a formatted message.
//
//	err := errors.Newf(errors.CodeInvalidData, "path is %d bytes, capacity is %d", n, max)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message. The cause remains reachable through
// errors.Is and errors.As.
//
// A wrapped PlatformError keeps its classification. Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

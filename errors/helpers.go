package errors

import (
	stderrors "errors"
)

// Is is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// GetClassification returns the classification of the outermost PlatformError
// in err's chain. Plain errors are treated as permanent.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if err is classified as retryable.
// Nothing in the router retries on its own; this is for callers.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

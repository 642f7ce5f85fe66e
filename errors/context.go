package errors

import "errors"

// WithContext returns a copy of err with key set to value in its context.
// Errors that are not PlatformErrors are converted using CodeUnknown.
// Returns nil if err is nil.
//
//	err = errors.WithContext(err, "path", "/foo/bar.txt")
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !errors.As(err, &platformErr) {
		platformErr = &platformError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	ctx := platformErr.Context()
	if ctx == nil {
		ctx = make(map[string]interface{}, 1)
	}
	ctx[key] = value

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        ctx,
		cause:          platformErr.Unwrap(),
	}
}

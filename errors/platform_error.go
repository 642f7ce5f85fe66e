package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error formats as "[CODE] message" or "[CODE] message: cause".
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map so the error stays immutable.
func (e *platformError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	return copyContext(e.context)
}

func (e *platformError) Unwrap() error {
	return e.cause
}

// codeSentinels maps taxonomy codes onto the standard library sentinels.
var codeSentinels = map[ErrorCode]error{
	CodeNotFound:         fs.ErrNotExist,
	CodeAlreadyExists:    fs.ErrExist,
	CodePermissionDenied: fs.ErrPermission,
	CodeInvalidInput:     fs.ErrInvalid,
	CodeUnsupported:      stderrors.ErrUnsupported,
}

// Is reports whether target is the io/fs sentinel matching the error code.
func (e *platformError) Is(target error) bool {
	sentinel, ok := codeSentinels[e.code]
	return ok && sentinel == target
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}

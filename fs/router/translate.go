package router

import (
	stderrors "errors"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/fs/wire"
)

// wireCodes maps backend codes onto the generic taxonomy. Anything missing
// becomes CodeOther.
var wireCodes = map[wire.ErrorCode]errors.ErrorCode{
	wire.ErrorCodePathNotFound:      errors.CodeNotFound,
	wire.ErrorCodeFileNotFound:      errors.CodeNotFound,
	wire.ErrorCodeDirectoryNotFound: errors.CodeNotFound,
	wire.ErrorCodePathExists:        errors.CodeAlreadyExists,
	wire.ErrorCodeInvalidInput:      errors.CodeInvalidInput,
	wire.ErrorCodePathTooLong:       errors.CodeInvalidData,
	wire.ErrorCodeAccessDenied:      errors.CodePermissionDenied,
}

// TranslateCode returns the generic code for a backend code.
func TranslateCode(code wire.ErrorCode) errors.ErrorCode {
	if c, ok := wireCodes[code]; ok {
		return c
	}
	return errors.CodeOther
}

// translate converts a backend failure into a PlatformError that wraps it.
// Errors that are already PlatformErrors pass through unchanged.
func translate(op, name string, err error) error {
	if err == nil {
		return nil
	}

	var platformErr errors.PlatformError
	if errors.As(err, &platformErr) {
		return err
	}

	var wireErr *wire.Error
	if !stderrors.As(err, &wireErr) {
		return errors.WithContext(errors.Wrapf(err, errors.CodeOther, "%s %s", op, name), "path", name)
	}

	translated := errors.Wrapf(err, TranslateCode(wireErr.Code), "%s %s", op, name)
	translated = errors.WithContext(translated, "backend_code", wireErr.Code.String())
	return errors.WithContext(translated, "path", name)
}

func unsupported(op, name string) error {
	return errors.WithContext(errors.Newf(errors.CodeUnsupported, "%s: operation not supported", op), "path", name)
}

func invalidInput(name, format string, args ...interface{}) error {
	return errors.WithContext(errors.Newf(errors.CodeInvalidInput, format, args...), "path", name)
}

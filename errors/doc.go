// Package errors provides the structured error type shared by every package in
// the filesystem router.
//
// Each error carries an ErrorCode from the generic I/O taxonomy, a retry
// classification, a human readable message, optional context metadata and an
// optional cause. Errors stay compatible with the standard library: errors.Is,
// errors.As and errors.Unwrap walk the chain as usual.
//
// # Taxonomy
//
// Filesystem operations surface exactly one of these codes:
//
//   - CodeNotFound: a path, file or directory is missing
//   - CodeAlreadyExists: an exclusive create hit an existing resource
//   - CodePermissionDenied: the backend refused access
//   - CodeInvalidInput: malformed arguments, cross-backend rename, negative seek
//   - CodeInvalidData: a path that does not fit the wire format
//   - CodeUnsupported: the operation or path is not supported
//   - CodeOther: any backend failure without a closer match
//
// Configuration and transport failures use CodeInvalidConfig, CodeNetwork,
// CodeTimeout and CodeUnavailable.
//
// # io/fs Compatibility
//
// Errors created by this package match the io/fs sentinels that correspond to
// their code, so callers written against the standard library keep working:
//
//	f, err := r.Open(ctx, "system:/missing.txt", core.NewOpenOptions().Read(true))
//	if errors.Is(err, fs.ErrNotExist) {
//	    // CodeNotFound
//	}
//
// # Usage
//
//	err := errors.New(errors.CodeInvalidInput, "not in the same filesystem")
//	err = errors.WithContext(err, "from", from)
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // ...
//	}
package errors

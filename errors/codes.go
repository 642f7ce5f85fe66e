package errors

// ErrorCode identifies the kind of failure.
// Codes are strings so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// I/O taxonomy.

	// CodeNotFound indicates a path, file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodePermissionDenied indicates the operation lacked the necessary privileges.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeInvalidInput indicates an argument was invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidData indicates data could not be represented, such as a path
	// that exceeds the wire format capacity.
	CodeInvalidData ErrorCode = "INVALID_DATA"

	// CodeUnsupported indicates the operation is not supported for the target.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeOther indicates an I/O failure without a more specific code.
	CodeOther ErrorCode = "OTHER"

	// Configuration.

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Infrastructure.

	// CodeNetwork indicates a network operation failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeUnavailable indicates a backend service is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// System.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)

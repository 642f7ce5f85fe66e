package errors

// ErrorClassification tells callers whether repeating an operation can help.
type ErrorClassification string

const (
	// ClassificationRetryable marks temporary failures such as timeouts.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will recur on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeNetwork:     ClassificationRetryable,
	CodeTimeout:     ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,

	CodeNotFound:         ClassificationPermanent,
	CodeAlreadyExists:    ClassificationPermanent,
	CodePermissionDenied: ClassificationPermanent,
	CodeInvalidInput:     ClassificationPermanent,
	CodeInvalidData:      ClassificationPermanent,
	CodeUnsupported:      ClassificationPermanent,
	CodeOther:            ClassificationPermanent,
	CodeInvalidConfig:    ClassificationPermanent,
	CodeInternal:         ClassificationPermanent,
	CodeUnknown:          ClassificationPermanent,
}

// getDefaultClassification returns the classification for code, or
// ClassificationPermanent for codes without an entry.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}

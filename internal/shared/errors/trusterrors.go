package errors

import "net/http"

// Trust-pipeline error types. These get their own type strings so the HTTP
// layer can tell a client exactly which precondition failed without exposing
// internals.
const (
	ErrorTypeInvalidInput         ErrorType = "invalid_input"
	ErrorTypeConsentRequired      ErrorType = "consent_required"
	ErrorTypeInsufficientReadTime ErrorType = "insufficient_read_time"
	ErrorTypeIncompleteRead       ErrorType = "incomplete_read"
	ErrorTypeBiometricRequired    ErrorType = "biometric_required"
	ErrorTypeStorage              ErrorType = "storage_error"
)

// NewInvalidInputError creates an error for malformed or empty input.
func NewInvalidInputError(message string, details ...string) *AppError {
	return newError(ErrorTypeInvalidInput, http.StatusBadRequest, message, details...)
}

// NewConsentRequiredError creates the fail-closed error returned when a user
// requests protected content without a valid consent signature for the
// current document version.
func NewConsentRequiredError(details ...string) *AppError {
	return newError(ErrorTypeConsentRequired, http.StatusForbidden,
		"a valid consent signature for the current agreement is required", details...)
}

// NewInsufficientReadTimeError is returned when a signing attempt reports
// less reading time than the active document requires.
func NewInsufficientReadTimeError(details ...string) *AppError {
	return newError(ErrorTypeInsufficientReadTime, http.StatusUnprocessableEntity,
		"the agreement was not read for the required amount of time", details...)
}

// NewIncompleteReadError is returned when the client did not scroll the
// agreement to the bottom before signing.
func NewIncompleteReadError(details ...string) *AppError {
	return newError(ErrorTypeIncompleteRead, http.StatusUnprocessableEntity,
		"the agreement must be scrolled to the bottom before signing", details...)
}

// NewBiometricRequiredError is returned when biometric proof is missing or
// could not be verified.
func NewBiometricRequiredError(details ...string) *AppError {
	return newError(ErrorTypeBiometricRequired, http.StatusUnprocessableEntity,
		"biometric verification is required to sign the agreement", details...)
}

// NewStorageError wraps a persistence failure. Losing a violation or consent
// record is never acceptable, so these surface as hard 500s instead of being
// swallowed.
func NewStorageError(details ...string) *AppError {
	return newError(ErrorTypeStorage, http.StatusInternalServerError,
		"a storage operation failed", details...)
}

// IsConsentRequiredError checks if the error is a consent required error
func IsConsentRequiredError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConsentRequired
}

// IsStorageError checks if the error is a storage error
func IsStorageError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeStorage
}

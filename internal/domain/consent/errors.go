package consent

import "errors"

var (
	ErrDocumentNotFound        = errors.New("consent document not found")
	ErrNoActiveDocument        = errors.New("no active consent document version")
	ErrSignatureNotFound       = errors.New("consent signature not found")
	ErrSignatureAlreadyRevoked = errors.New("consent signature already revoked")
	ErrInsufficientReadTime    = errors.New("agreement not read for the required time")
	ErrIncompleteRead          = errors.New("agreement not scrolled to the bottom")
	ErrBiometricRequired       = errors.New("biometric verification required")
)

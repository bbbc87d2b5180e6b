package fingerprint

import "errors"

var (
	ErrFingerprintNotFound = errors.New("content fingerprint not found")
	ErrAlreadyAnchored     = errors.New("fingerprint already anchored")
	ErrHashImmutable       = errors.New("fingerprint hash is immutable once recorded")
)

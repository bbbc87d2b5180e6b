package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"lifeline/internal/shared/errors"
)

// ComputeFingerprint computes the canonical content digest: SHA-256 over the
// raw content bytes, hex encoded. The function is pure; identical input
// always yields an identical digest. Empty input is rejected so a missing
// upload can never silently anchor the digest of nothing.
func ComputeFingerprint(content []byte) (string, error) {
	if len(content) == 0 {
		return "", errors.NewInvalidInputError("content must not be empty")
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), nil
}

// IsValidHash reports whether s looks like a hex-encoded SHA-256 digest.
func IsValidHash(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

package consent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newDocument(t *testing.T, version int) *Document {
	t.Helper()
	doc, err := NewDocument(version, "# Shadow Self Agreement\n\nYou agree not to capture.", 30, time.Now().UTC())
	require.NoError(t, err)
	return doc
}

func goodMetrics() ReadingMetrics {
	return ReadingMetrics{TimeSpentReadingSeconds: 45, ScrolledToBottom: true}
}

// =====================================================================
// TestDocument_*
// =====================================================================

func TestNewDocument_ChecksumCoversExactText(t *testing.T) {
	doc := newDocument(t, 1)
	assert.Equal(t, ChecksumText(doc.Text()), doc.Checksum())
	assert.True(t, doc.RequiresScrollToBottom())
	assert.True(t, doc.Active())
}

func TestNewDocument_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewDocument(0, "text", 30, now)
	assert.Error(t, err)

	_, err = NewDocument(1, "", 30, now)
	assert.Error(t, err)

	_, err = NewDocument(1, "text", 0, now)
	assert.Error(t, err)
}

func TestReconstructDocument_ChecksumMismatch(t *testing.T) {
	_, err := ReconstructDocument(ReconstructDocumentParams{
		ID:                 1,
		Version:            1,
		Text:               "the text that is stored",
		Checksum:           ChecksumText("different text"),
		MinimumReadSeconds: 30,
	})
	require.Error(t, err)
}

func TestDocument_CheckReading(t *testing.T) {
	doc := newDocument(t, 1)

	assert.NoError(t, doc.CheckReading(goodMetrics()))

	err := doc.CheckReading(ReadingMetrics{TimeSpentReadingSeconds: 10, ScrolledToBottom: true})
	assert.ErrorIs(t, err, ErrInsufficientReadTime)

	err = doc.CheckReading(ReadingMetrics{TimeSpentReadingSeconds: 45, ScrolledToBottom: false})
	assert.ErrorIs(t, err, ErrIncompleteRead)

	// Read time is checked before scroll completion.
	err = doc.CheckReading(ReadingMetrics{TimeSpentReadingSeconds: 10, ScrolledToBottom: false})
	assert.ErrorIs(t, err, ErrInsufficientReadTime)
}

// =====================================================================
// TestSignature_*
// =====================================================================

func TestNewSignature_HappyPath(t *testing.T) {
	doc := newDocument(t, 1)
	sig, err := NewSignature("nda_test123", 7, doc, goodMetrics(), time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, sig.IsValid())
	assert.True(t, sig.BiometricVerified())
	assert.Equal(t, 1, sig.DocumentVersion())
	assert.Equal(t, doc.Checksum(), sig.DocumentChecksum())
	assert.True(t, sig.SatisfiesVersion(1))
}

func TestNewSignature_RejectsFailedReading(t *testing.T) {
	doc := newDocument(t, 1)
	_, err := NewSignature("nda_x", 7, doc, ReadingMetrics{TimeSpentReadingSeconds: 5, ScrolledToBottom: true}, time.Now().UTC())
	assert.ErrorIs(t, err, ErrInsufficientReadTime)
}

func TestSignature_Revoke(t *testing.T) {
	doc := newDocument(t, 1)
	sig, err := NewSignature("nda_test123", 7, doc, goodMetrics(), time.Now().UTC())
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, sig.Revoke("policy violation", now))
	assert.False(t, sig.IsValid())
	require.NotNil(t, sig.RevokedAt())
	require.NotNil(t, sig.RevokeReason())
	assert.Equal(t, "policy violation", *sig.RevokeReason())
	assert.False(t, sig.SatisfiesVersion(1))

	assert.ErrorIs(t, sig.Revoke("again", now), ErrSignatureAlreadyRevoked)
}

// A valid signature for an old version must not satisfy the current one.
func TestSignature_StaleVersion(t *testing.T) {
	doc := newDocument(t, 1)
	sig, err := NewSignature("nda_test123", 7, doc, goodMetrics(), time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, sig.SatisfiesVersion(1))
	assert.False(t, sig.SatisfiesVersion(2))
}

package fingerprint

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeline/internal/shared/errors"
)

// --- helpers ---

func newFingerprint(t *testing.T) *ContentFingerprint {
	t.Helper()
	hash, err := ComputeFingerprint([]byte("chapter one: the early years"))
	require.NoError(t, err)
	fp, err := NewContentFingerprint("fp_test123", "content-1", hash, time.Now().UTC())
	require.NoError(t, err)
	return fp
}

// =====================================================================
// TestComputeFingerprint_*
// =====================================================================

func TestComputeFingerprint_Deterministic(t *testing.T) {
	a, err := ComputeFingerprint([]byte("identical bytes"))
	require.NoError(t, err)
	b, err := ComputeFingerprint([]byte("identical bytes"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestComputeFingerprint_OneByteDifference(t *testing.T) {
	a, err := ComputeFingerprint([]byte("identical bytes"))
	require.NoError(t, err)
	b, err := ComputeFingerprint([]byte("identical bytez"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestComputeFingerprint_EmptyInput(t *testing.T) {
	_, err := ComputeFingerprint(nil)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidInput, appErr.Type)

	_, err = ComputeFingerprint([]byte{})
	require.Error(t, err)
}

func TestIsValidHash(t *testing.T) {
	hash, err := ComputeFingerprint([]byte("x"))
	require.NoError(t, err)
	assert.True(t, IsValidHash(hash))
	assert.False(t, IsValidHash("abc"))
	assert.False(t, IsValidHash(strings.Repeat("z", 64)))
}

// =====================================================================
// TestContentFingerprint_*
// =====================================================================

func TestNewContentFingerprint_RequiresValidHash(t *testing.T) {
	_, err := NewContentFingerprint("fp_x", "content-1", "nothex", time.Now().UTC())
	require.Error(t, err)
}

func TestConfirmAnchor(t *testing.T) {
	fp := newFingerprint(t)
	require.False(t, fp.Anchored())

	now := time.Now().UTC()
	require.NoError(t, fp.ConfirmAnchor("anchor-ref-1", now))
	assert.True(t, fp.Anchored())
	require.NotNil(t, fp.AnchorReference())
	assert.Equal(t, "anchor-ref-1", *fp.AnchorReference())

	err := fp.ConfirmAnchor("anchor-ref-2", now)
	assert.ErrorIs(t, err, ErrAlreadyAnchored)
}

func TestConfirmAnchor_EmptyReference(t *testing.T) {
	fp := newFingerprint(t)
	require.Error(t, fp.ConfirmAnchor("", time.Now().UTC()))
	assert.False(t, fp.Anchored())
}

func TestReconstructFingerprint_AnchoredWithoutReference(t *testing.T) {
	hash, err := ComputeFingerprint([]byte("x"))
	require.NoError(t, err)
	_, err = ReconstructFingerprint(ReconstructFingerprintParams{
		ID:        1,
		SID:       "fp_x",
		ContentID: "content-1",
		Hash:      hash,
		Anchored:  true,
	})
	require.Error(t, err)
}

// =====================================================================
// TestBadgeFor_*
// =====================================================================

func TestBadgeFor_UnanchoredReturnsNil(t *testing.T) {
	fp := newFingerprint(t)
	assert.Nil(t, BadgeFor(fp, "polygon"))
}

func TestBadgeFor_Anchored(t *testing.T) {
	fp := newFingerprint(t)
	require.NoError(t, fp.ConfirmAnchor("anchor-ref-1", time.Now().UTC()))

	badge := BadgeFor(fp, "polygon")
	require.NotNil(t, badge)
	assert.Equal(t, "content-1", badge.ContentID)
	assert.Equal(t, "polygon", badge.Network)
	assert.Equal(t, "anchor-ref-1", badge.AnchorReference)
	assert.Len(t, badge.TruncatedHash, 16)
	assert.True(t, strings.HasPrefix(fp.Hash(), badge.TruncatedHash))
}

func TestBadgeFor_SupersededReturnsNil(t *testing.T) {
	fp := newFingerprint(t)
	require.NoError(t, fp.ConfirmAnchor("anchor-ref-1", time.Now().UTC()))
	fp.Supersede(time.Now().UTC())
	assert.Nil(t, BadgeFor(fp, "polygon"))
}

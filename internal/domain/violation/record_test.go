package violation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lifeline/internal/domain/violation/valueobjects"
)

func newRecord(t *testing.T) *Record {
	t.Helper()
	r, err := NewRecord("vio_test123", 10, 20, "content-1", vo.CaptureScreenshot, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func TestNewRecord_ValidInput(t *testing.T) {
	r := newRecord(t)
	assert.Equal(t, uint(10), r.SubscriberID())
	assert.Equal(t, uint(20), r.CreatorID())
	assert.Equal(t, vo.CaptureScreenshot, r.Kind())
	assert.False(t, r.WarningIssued())
}

func TestNewRecord_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewRecord("", 10, 20, "content-1", vo.CaptureScreenshot, now)
	assert.Error(t, err)

	_, err = NewRecord("vio_x", 0, 20, "content-1", vo.CaptureScreenshot, now)
	assert.Error(t, err)

	_, err = NewRecord("vio_x", 10, 20, "", vo.CaptureScreenshot, now)
	assert.Error(t, err)

	_, err = NewRecord("vio_x", 10, 20, "content-1", vo.CaptureKind("wiretap"), now)
	assert.Error(t, err)
}

func TestRecord_MarkWarningIssued(t *testing.T) {
	r := newRecord(t)
	r.MarkWarningIssued()
	assert.True(t, r.WarningIssued())
}

func TestRecord_SetID(t *testing.T) {
	r := newRecord(t)
	require.NoError(t, r.SetID(42))
	assert.Equal(t, uint(42), r.ID())
	assert.Error(t, r.SetID(43))
}

func TestNewCaptureKind(t *testing.T) {
	k, err := vo.NewCaptureKind("recording")
	require.NoError(t, err)
	assert.Equal(t, vo.CaptureRecording, k)

	_, err = vo.NewCaptureKind("telepathy")
	assert.Error(t, err)
}

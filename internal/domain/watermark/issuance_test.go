package watermark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lifeline/internal/domain/watermark/valueobjects"
)

func TestNewIssuance_ValidInput(t *testing.T) {
	now := time.Now().UTC()
	iss, err := NewIssuance("wm_test123", "00000000-0000-0000-0000-000000000001", "content-1", 7, "deadbeef", vo.KindForensic, now)
	require.NoError(t, err)

	assert.Equal(t, "content-1", iss.ContentID())
	assert.Equal(t, uint(7), iss.ViewerID())
	assert.Equal(t, vo.KindForensic, iss.Kind())
	assert.Equal(t, now, iss.IssuedAt())
}

func TestNewIssuance_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewIssuance("", "u", "content-1", 7, "tok", vo.KindVisible, now)
	assert.Error(t, err)

	_, err = NewIssuance("wm_x", "u", "", 7, "tok", vo.KindVisible, now)
	assert.Error(t, err)

	_, err = NewIssuance("wm_x", "u", "content-1", 0, "tok", vo.KindVisible, now)
	assert.Error(t, err)

	_, err = NewIssuance("wm_x", "u", "content-1", 7, "", vo.KindVisible, now)
	assert.Error(t, err)

	_, err = NewIssuance("wm_x", "u", "content-1", 7, "tok", vo.Kind("hologram"), now)
	assert.Error(t, err)
}

func TestNewKind(t *testing.T) {
	k, err := vo.NewKind("invisible")
	require.NoError(t, err)
	assert.Equal(t, vo.KindInvisible, k)
	assert.False(t, k.Perceptible())
	assert.True(t, vo.KindVisible.Perceptible())

	_, err = vo.NewKind("sparkly")
	assert.Error(t, err)
}

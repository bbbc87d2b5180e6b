package watermarking

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lifeline/internal/domain/watermark/valueobjects"
)

func randomMedia(t *testing.T, size int) []byte {
	t.Helper()
	media := make([]byte, size)
	_, err := rand.Read(media)
	require.NoError(t, err)
	return media
}

func TestStegoEmbedder_RoundTrip(t *testing.T) {
	embedder := NewStegoEmbedder()
	media := randomMedia(t, 8192)
	token := "token-abc123"

	marked, err := embedder.Embed(media, token, vo.KindInvisible)
	require.NoError(t, err)
	require.Len(t, marked, len(media))

	extracted, err := Extract(marked)
	require.NoError(t, err)
	assert.Equal(t, token, extracted)
}

func TestStegoEmbedder_OnlyLowBitsChange(t *testing.T) {
	embedder := NewStegoEmbedder()
	media := randomMedia(t, 8192)

	marked, err := embedder.Embed(media, "token-abc123", vo.KindInvisible)
	require.NoError(t, err)

	for i := range media {
		assert.Equal(t, media[i]&0xFE, marked[i]&0xFE, "byte %d changed above the low bit", i)
	}
}

func TestStegoEmbedder_ForensicSurvivesLosingFirstHalf(t *testing.T) {
	embedder := NewStegoEmbedder()
	media := randomMedia(t, 16384)
	token := "token-abc123"

	marked, err := embedder.Embed(media, token, vo.KindForensic)
	require.NoError(t, err)

	cropped := marked[len(marked)/2:]
	extracted, err := Extract(cropped)
	require.NoError(t, err)
	assert.Equal(t, token, extracted)
}

func TestStegoEmbedder_EmptyMediaRejected(t *testing.T) {
	embedder := NewStegoEmbedder()

	_, err := embedder.Embed(nil, "token-abc123", vo.KindInvisible)
	assert.Error(t, err)
}

func TestStegoEmbedder_MediaTooSmallFailsInsteadOfPassingThrough(t *testing.T) {
	embedder := NewStegoEmbedder()
	media := randomMedia(t, 16)

	marked, err := embedder.Embed(media, "token-abc123", vo.KindInvisible)
	require.Error(t, err)
	assert.Nil(t, marked)
}

func TestExtract_UnmarkedMedia(t *testing.T) {
	media := bytes.Repeat([]byte{0xAA}, 4096)

	_, err := Extract(media)
	assert.Error(t, err)
}

func TestStegoEmbedder_DoesNotMutateInput(t *testing.T) {
	embedder := NewStegoEmbedder()
	media := randomMedia(t, 4096)
	original := make([]byte, len(media))
	copy(original, media)

	_, err := embedder.Embed(media, "token-abc123", vo.KindVisible)
	require.NoError(t, err)
	assert.Equal(t, original, media)
}

// Package watermarking embeds issuance tokens into media bytes.
package watermarking

import (
	"encoding/binary"
	"fmt"

	"lifeline/internal/domain/watermark"
	vo "lifeline/internal/domain/watermark/valueobjects"
)

// stegoMagic prefixes every embedded payload so extraction can reject media
// that carries no mark.
var stegoMagic = []byte("LLWM1")

// StegoEmbedder writes the embed token into the least significant bits of the
// media bytes. Forensic marks are written twice, the second copy starting at
// the midpoint, so the token survives cropping of either half. Perceptible
// overlay rendering for visible marks happens in the client; the byte-level
// mark is embedded for all kinds so every served copy stays traceable.
type StegoEmbedder struct{}

func NewStegoEmbedder() watermark.Embedder {
	return &StegoEmbedder{}
}

func (e *StegoEmbedder) Embed(media []byte, embedToken string, kind vo.Kind) ([]byte, error) {
	if len(media) == 0 {
		return nil, fmt.Errorf("cannot watermark empty media")
	}
	if embedToken == "" {
		return nil, fmt.Errorf("embed token is required")
	}

	payload := buildPayload(embedToken)
	needed := len(payload) * 8
	if len(media) < needed {
		return nil, fmt.Errorf("media too small for watermark: need %d bytes, have %d", needed, len(media))
	}

	out := make([]byte, len(media))
	copy(out, media)

	writeBits(out, 0, payload)

	if kind == vo.KindForensic {
		mid := len(out) / 2
		if len(out)-mid >= needed {
			writeBits(out, mid, payload)
		}
	}

	return out, nil
}

// Extract recovers the embed token from marked media. It returns an error
// when no mark is present.
func Extract(media []byte) (string, error) {
	header := len(stegoMagic) + 2
	if len(media) < header*8 {
		return "", fmt.Errorf("media too small to carry a watermark")
	}

	head := readBits(media, 0, header)
	for i, b := range stegoMagic {
		if head[i] != b {
			return "", fmt.Errorf("no watermark found")
		}
	}

	tokenLen := int(binary.BigEndian.Uint16(head[len(stegoMagic):]))
	if tokenLen == 0 || len(media) < (header+tokenLen)*8 {
		return "", fmt.Errorf("corrupted watermark payload")
	}

	token := readBits(media, header*8, tokenLen)
	return string(token), nil
}

func buildPayload(embedToken string) []byte {
	payload := make([]byte, 0, len(stegoMagic)+2+len(embedToken))
	payload = append(payload, stegoMagic...)
	payload = binary.BigEndian.AppendUint16(payload, uint16(len(embedToken)))
	payload = append(payload, embedToken...)
	return payload
}

func writeBits(dst []byte, offset int, payload []byte) {
	pos := offset
	for _, b := range payload {
		for bit := 7; bit >= 0; bit-- {
			dst[pos] = (dst[pos] &^ 1) | ((b >> uint(bit)) & 1)
			pos++
		}
	}
}

func readBits(src []byte, bitOffset, n int) []byte {
	out := make([]byte, n)
	pos := bitOffset
	for i := 0; i < n; i++ {
		var b byte
		for bit := 0; bit < 8; bit++ {
			b = (b << 1) | (src[pos] & 1)
			pos++
		}
		out[i] = b
	}
	return out
}

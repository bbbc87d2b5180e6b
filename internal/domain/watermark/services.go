package watermark

import (
	"time"

	vo "lifeline/internal/domain/watermark/valueobjects"
)

// TokenGenerator derives embed tokens. Tokens must be a one-way function of
// content, viewer, issuance time and a per-issuance random salt so that no
// two issuances collide and no token is derivable from another.
type TokenGenerator interface {
	Generate(contentID string, viewerID uint, issuedAt time.Time) (string, error)
}

// Embedder applies an embed token to media bytes. A failed embed must return
// an error instead of unmarked media so the caller can block distribution
// rather than serve unprotected content.
type Embedder interface {
	Embed(media []byte, embedToken string, kind vo.Kind) ([]byte, error)
}

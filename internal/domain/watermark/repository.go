package watermark

import "context"

// Repository persists watermark issuances. The log is append-only; issuances
// are never mutated.
type Repository interface {
	Create(ctx context.Context, issuance *Issuance) error
	GetByEmbedToken(ctx context.Context, embedToken string) (*Issuance, error)
	ListByContent(ctx context.Context, contentID string, page, pageSize int) ([]*Issuance, int64, error)
}

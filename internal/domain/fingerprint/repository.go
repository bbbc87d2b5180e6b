package fingerprint

import "context"

// Repository persists content fingerprints. Rows are append-only except for
// anchor confirmation and supersession.
type Repository interface {
	Create(ctx context.Context, fp *ContentFingerprint) error
	GetActiveByContentID(ctx context.Context, contentID string) (*ContentFingerprint, error)
	GetByHash(ctx context.Context, hash string) (*ContentFingerprint, error)
	ConfirmAnchor(ctx context.Context, fp *ContentFingerprint) error
	SupersedeByContentID(ctx context.Context, contentID string) error
	ListUnanchored(ctx context.Context, limit int) ([]*ContentFingerprint, error)
}

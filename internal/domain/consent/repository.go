package consent

import "context"

// DocumentRepository stores versioned agreement documents. Exactly one
// version is active at a time.
type DocumentRepository interface {
	GetActive(ctx context.Context) (*Document, error)
	GetByVersion(ctx context.Context, version int) (*Document, error)
	// CreateAndActivate persists a new version and deactivates the previous
	// active one in the same transaction.
	CreateAndActivate(ctx context.Context, doc *Document) error
}

// SignatureRepository stores consent signatures. Rows are append-only except
// for revocation.
type SignatureRepository interface {
	Create(ctx context.Context, sig *Signature) error
	GetValidByUserAndVersion(ctx context.Context, userID uint, version int) (*Signature, error)
	ListByUser(ctx context.Context, userID uint) ([]*Signature, error)
	// UpdateRevocation persists the revocation fields of an already revoked
	// entity. History rows are never deleted.
	UpdateRevocation(ctx context.Context, sig *Signature) error
}

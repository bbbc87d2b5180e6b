// Package ledger defines the outbound port for anchoring content hashes on
// an external ledger service.
package ledger

import (
	"context"
	"errors"
	"time"
)

// ErrAnchorTimeout indicates the ledger did not answer within the configured
// deadline. Anchoring is best-effort; callers persist the fingerprint first
// and retry later.
var ErrAnchorTimeout = errors.New("ledger anchor request timed out")

// AnchorReceipt is the ledger's confirmation for one anchored hash.
type AnchorReceipt struct {
	Reference  string
	Network    string
	AnchoredAt time.Time
}

// AnchorClient submits content hashes to the ledger service.
type AnchorClient interface {
	Anchor(ctx context.Context, hash string) (*AnchorReceipt, error)
}

package fingerprint

import (
	"fmt"
	"time"
)

// ContentFingerprint is the provenance record for one content item: the
// digest computed at publish time plus the (possibly still pending) external
// ledger anchor. The hash is immutable once recorded; re-hashing changed
// content supersedes the old record instead of mutating it.
type ContentFingerprint struct {
	id              uint
	sid             string
	contentID       string
	hash            string
	anchorReference *string
	anchored        bool
	superseded      bool
	recordedAt      time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewContentFingerprint creates a fingerprint record for freshly published
// content. The anchor starts out pending; anchoring is a separate step that
// may fail without invalidating the fingerprint.
func NewContentFingerprint(sid, contentID, hash string, recordedAt time.Time) (*ContentFingerprint, error) {
	if sid == "" {
		return nil, fmt.Errorf("fingerprint SID is required")
	}
	if contentID == "" {
		return nil, fmt.Errorf("content ID is required")
	}
	if !IsValidHash(hash) {
		return nil, fmt.Errorf("invalid content hash: %q", hash)
	}

	return &ContentFingerprint{
		sid:        sid,
		contentID:  contentID,
		hash:       hash,
		recordedAt: recordedAt,
		createdAt:  recordedAt,
		updatedAt:  recordedAt,
	}, nil
}

// ReconstructFingerprintParams carries all persisted fields for reconstruction.
type ReconstructFingerprintParams struct {
	ID              uint
	SID             string
	ContentID       string
	Hash            string
	AnchorReference *string
	Anchored        bool
	Superseded      bool
	RecordedAt      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructFingerprint rebuilds a fingerprint from persistence.
func ReconstructFingerprint(p ReconstructFingerprintParams) (*ContentFingerprint, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("fingerprint ID cannot be zero")
	}
	if p.ContentID == "" {
		return nil, fmt.Errorf("content ID is required")
	}
	if !IsValidHash(p.Hash) {
		return nil, fmt.Errorf("invalid content hash: %q", p.Hash)
	}
	if p.Anchored && (p.AnchorReference == nil || *p.AnchorReference == "") {
		return nil, fmt.Errorf("anchored fingerprint must carry an anchor reference")
	}

	return &ContentFingerprint{
		id:              p.ID,
		sid:             p.SID,
		contentID:       p.ContentID,
		hash:            p.Hash,
		anchorReference: p.AnchorReference,
		anchored:        p.Anchored,
		superseded:      p.Superseded,
		recordedAt:      p.RecordedAt,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (f *ContentFingerprint) ID() uint                 { return f.id }
func (f *ContentFingerprint) SID() string              { return f.sid }
func (f *ContentFingerprint) ContentID() string        { return f.contentID }
func (f *ContentFingerprint) Hash() string             { return f.hash }
func (f *ContentFingerprint) AnchorReference() *string { return f.anchorReference }
func (f *ContentFingerprint) Anchored() bool           { return f.anchored }
func (f *ContentFingerprint) Superseded() bool         { return f.superseded }
func (f *ContentFingerprint) RecordedAt() time.Time    { return f.recordedAt }
func (f *ContentFingerprint) CreatedAt() time.Time     { return f.createdAt }
func (f *ContentFingerprint) UpdatedAt() time.Time     { return f.updatedAt }

// SetID assigns the database-generated ID after creation.
func (f *ContentFingerprint) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("fingerprint ID already set")
	}
	if id == 0 {
		return fmt.Errorf("fingerprint ID cannot be zero")
	}
	f.id = id
	return nil
}

// ConfirmAnchor records a successful external anchor. This is the only
// permitted in-place update besides supersession.
func (f *ContentFingerprint) ConfirmAnchor(reference string, at time.Time) error {
	if reference == "" {
		return fmt.Errorf("anchor reference is required")
	}
	if f.anchored {
		return ErrAlreadyAnchored
	}
	f.anchorReference = &reference
	f.anchored = true
	f.updatedAt = at
	return nil
}

// Supersede marks this fingerprint as replaced by a newer record for the same
// content. The row is kept as provenance history.
func (f *ContentFingerprint) Supersede(at time.Time) {
	f.superseded = true
	f.updatedAt = at
}

// TruncatedHash returns a display-safe prefix of the digest for badges.
func (f *ContentFingerprint) TruncatedHash() string {
	const badgeHashLen = 16
	if len(f.hash) <= badgeHashLen {
		return f.hash
	}
	return f.hash[:badgeHashLen]
}

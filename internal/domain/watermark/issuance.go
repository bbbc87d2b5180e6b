package watermark

import (
	"fmt"
	"time"

	vo "lifeline/internal/domain/watermark/valueobjects"
)

// Issuance records one watermark grant: a unique embed token tied to exactly
// one (content, viewer, time) pairing. Issuances are append-only; given a
// leaked copy, scanning issuances for the embedded token narrows the leak to
// a single viewer and access time.
type Issuance struct {
	id         uint
	sid        string
	uuid       string
	contentID  string
	viewerID   uint
	embedToken string
	kind       vo.Kind
	issuedAt   time.Time
	createdAt  time.Time
}

// NewIssuance creates a watermark issuance.
func NewIssuance(sid, uuid, contentID string, viewerID uint, embedToken string, kind vo.Kind, issuedAt time.Time) (*Issuance, error) {
	if sid == "" {
		return nil, fmt.Errorf("issuance SID is required")
	}
	if contentID == "" {
		return nil, fmt.Errorf("content ID is required")
	}
	if viewerID == 0 {
		return nil, fmt.Errorf("viewer ID is required")
	}
	if embedToken == "" {
		return nil, fmt.Errorf("embed token is required")
	}
	if !vo.ValidKinds[kind] {
		return nil, fmt.Errorf("invalid watermark kind: %s", kind)
	}

	return &Issuance{
		sid:        sid,
		uuid:       uuid,
		contentID:  contentID,
		viewerID:   viewerID,
		embedToken: embedToken,
		kind:       kind,
		issuedAt:   issuedAt,
		createdAt:  issuedAt,
	}, nil
}

// ReconstructIssuanceParams carries persisted fields for reconstruction.
type ReconstructIssuanceParams struct {
	ID         uint
	SID        string
	UUID       string
	ContentID  string
	ViewerID   uint
	EmbedToken string
	Kind       vo.Kind
	IssuedAt   time.Time
	CreatedAt  time.Time
}

// ReconstructIssuance rebuilds an issuance from persistence.
func ReconstructIssuance(p ReconstructIssuanceParams) (*Issuance, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("issuance ID cannot be zero")
	}
	if !vo.ValidKinds[p.Kind] {
		return nil, fmt.Errorf("invalid watermark kind: %s", p.Kind)
	}

	return &Issuance{
		id:         p.ID,
		sid:        p.SID,
		uuid:       p.UUID,
		contentID:  p.ContentID,
		viewerID:   p.ViewerID,
		embedToken: p.EmbedToken,
		kind:       p.Kind,
		issuedAt:   p.IssuedAt,
		createdAt:  p.CreatedAt,
	}, nil
}

func (i *Issuance) ID() uint             { return i.id }
func (i *Issuance) SID() string          { return i.sid }
func (i *Issuance) UUID() string         { return i.uuid }
func (i *Issuance) ContentID() string    { return i.contentID }
func (i *Issuance) ViewerID() uint       { return i.viewerID }
func (i *Issuance) EmbedToken() string   { return i.embedToken }
func (i *Issuance) Kind() vo.Kind        { return i.kind }
func (i *Issuance) IssuedAt() time.Time  { return i.issuedAt }
func (i *Issuance) CreatedAt() time.Time { return i.createdAt }

// SetID assigns the database-generated ID after creation.
func (i *Issuance) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issuance ID already set")
	}
	if id == 0 {
		return fmt.Errorf("issuance ID cannot be zero")
	}
	i.id = id
	return nil
}

package protection

import (
	"fmt"
	"time"
)

// AccessEntry is one grant of protected content to a viewer. The access log
// is append-only with the same durability requirement as violation records:
// every grant must be traceable to a consent signature and a watermark
// issuance after the fact.
type AccessEntry struct {
	id           uint
	sid          string
	userID       uint
	contentID    string
	watermarkSID string
	grantedAt    time.Time
	createdAt    time.Time
}

// NewAccessEntry creates an access-log entry for a granted request.
func NewAccessEntry(sid string, userID uint, contentID, watermarkSID string, grantedAt time.Time) (*AccessEntry, error) {
	if sid == "" {
		return nil, fmt.Errorf("access entry SID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if contentID == "" {
		return nil, fmt.Errorf("content ID is required")
	}
	if watermarkSID == "" {
		return nil, fmt.Errorf("watermark SID is required")
	}

	return &AccessEntry{
		sid:          sid,
		userID:       userID,
		contentID:    contentID,
		watermarkSID: watermarkSID,
		grantedAt:    grantedAt,
		createdAt:    grantedAt,
	}, nil
}

// ReconstructAccessEntryParams carries persisted fields for reconstruction.
type ReconstructAccessEntryParams struct {
	ID           uint
	SID          string
	UserID       uint
	ContentID    string
	WatermarkSID string
	GrantedAt    time.Time
	CreatedAt    time.Time
}

// ReconstructAccessEntry rebuilds an entry from persistence.
func ReconstructAccessEntry(p ReconstructAccessEntryParams) (*AccessEntry, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("access entry ID cannot be zero")
	}

	return &AccessEntry{
		id:           p.ID,
		sid:          p.SID,
		userID:       p.UserID,
		contentID:    p.ContentID,
		watermarkSID: p.WatermarkSID,
		grantedAt:    p.GrantedAt,
		createdAt:    p.CreatedAt,
	}, nil
}

func (e *AccessEntry) ID() uint             { return e.id }
func (e *AccessEntry) SID() string          { return e.sid }
func (e *AccessEntry) UserID() uint         { return e.userID }
func (e *AccessEntry) ContentID() string    { return e.contentID }
func (e *AccessEntry) WatermarkSID() string { return e.watermarkSID }
func (e *AccessEntry) GrantedAt() time.Time { return e.grantedAt }
func (e *AccessEntry) CreatedAt() time.Time { return e.createdAt }

// SetID assigns the database-generated ID after creation.
func (e *AccessEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("access entry ID already set")
	}
	if id == 0 {
		return fmt.Errorf("access entry ID cannot be zero")
	}
	e.id = id
	return nil
}

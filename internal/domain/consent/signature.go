package consent

import (
	"fmt"
	"time"
)

// Signature is one successful signing of a document version. Failed signing
// attempts never produce a record. A signature stays in history forever; it
// can be revoked, and it goes stale when the document version advances, but
// it is never deleted.
type Signature struct {
	id                      uint
	sid                     string
	userID                  uint
	documentVersion         int
	documentChecksum        string
	signedAt                time.Time
	biometricVerified       bool
	scrolledToBottom        bool
	timeSpentReadingSeconds int
	isValid                 bool
	revokedAt               *time.Time
	revokeReason            *string
	createdAt               time.Time
	updatedAt               time.Time
}

// NewSignature records a successful signing. All preconditions (biometric,
// read time, scroll) must already have been checked; the entity only refuses
// obviously inconsistent input.
func NewSignature(sid string, userID uint, doc *Document, metrics ReadingMetrics, signedAt time.Time) (*Signature, error) {
	if sid == "" {
		return nil, fmt.Errorf("signature SID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if doc == nil {
		return nil, fmt.Errorf("document is required")
	}
	if err := doc.CheckReading(metrics); err != nil {
		return nil, err
	}

	return &Signature{
		sid:                     sid,
		userID:                  userID,
		documentVersion:         doc.Version(),
		documentChecksum:        doc.Checksum(),
		signedAt:                signedAt,
		biometricVerified:       true,
		scrolledToBottom:        metrics.ScrolledToBottom,
		timeSpentReadingSeconds: metrics.TimeSpentReadingSeconds,
		isValid:                 true,
		createdAt:               signedAt,
		updatedAt:               signedAt,
	}, nil
}

// ReconstructSignatureParams carries persisted fields for reconstruction.
type ReconstructSignatureParams struct {
	ID                      uint
	SID                     string
	UserID                  uint
	DocumentVersion         int
	DocumentChecksum        string
	SignedAt                time.Time
	BiometricVerified       bool
	ScrolledToBottom        bool
	TimeSpentReadingSeconds int
	IsValid                 bool
	RevokedAt               *time.Time
	RevokeReason            *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ReconstructSignature rebuilds a signature from persistence.
func ReconstructSignature(p ReconstructSignatureParams) (*Signature, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("signature ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if p.DocumentVersion <= 0 {
		return nil, fmt.Errorf("document version must be positive")
	}

	return &Signature{
		id:                      p.ID,
		sid:                     p.SID,
		userID:                  p.UserID,
		documentVersion:         p.DocumentVersion,
		documentChecksum:        p.DocumentChecksum,
		signedAt:                p.SignedAt,
		biometricVerified:       p.BiometricVerified,
		scrolledToBottom:        p.ScrolledToBottom,
		timeSpentReadingSeconds: p.TimeSpentReadingSeconds,
		isValid:                 p.IsValid,
		revokedAt:               p.RevokedAt,
		revokeReason:            p.RevokeReason,
		createdAt:               p.CreatedAt,
		updatedAt:               p.UpdatedAt,
	}, nil
}

func (s *Signature) ID() uint                     { return s.id }
func (s *Signature) SID() string                  { return s.sid }
func (s *Signature) UserID() uint                 { return s.userID }
func (s *Signature) DocumentVersion() int         { return s.documentVersion }
func (s *Signature) DocumentChecksum() string     { return s.documentChecksum }
func (s *Signature) SignedAt() time.Time          { return s.signedAt }
func (s *Signature) BiometricVerified() bool      { return s.biometricVerified }
func (s *Signature) ScrolledToBottom() bool       { return s.scrolledToBottom }
func (s *Signature) TimeSpentReadingSeconds() int { return s.timeSpentReadingSeconds }
func (s *Signature) IsValid() bool                { return s.isValid }
func (s *Signature) RevokedAt() *time.Time        { return s.revokedAt }
func (s *Signature) RevokeReason() *string        { return s.revokeReason }
func (s *Signature) CreatedAt() time.Time         { return s.createdAt }
func (s *Signature) UpdatedAt() time.Time         { return s.updatedAt }

// SetID assigns the database-generated ID after creation.
func (s *Signature) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("signature ID already set")
	}
	if id == 0 {
		return fmt.Errorf("signature ID cannot be zero")
	}
	s.id = id
	return nil
}

// Revoke invalidates the signature. History is kept; a revoked signature can
// only be replaced by a new signing, never un-revoked.
func (s *Signature) Revoke(reason string, at time.Time) error {
	if !s.isValid {
		return ErrSignatureAlreadyRevoked
	}
	s.isValid = false
	s.revokedAt = &at
	s.revokeReason = &reason
	s.updatedAt = at
	return nil
}

// SatisfiesVersion reports whether this signature constitutes valid consent
// for the given document version. A valid signature for an older version
// does not count; document updates invalidate old consent rather than
// grandfathering it.
func (s *Signature) SatisfiesVersion(version int) bool {
	return s.isValid && s.revokedAt == nil && s.documentVersion == version
}

package dto

import (
	"time"

	"lifeline/internal/domain/fingerprint"
)

type FingerprintDTO struct {
	SID             string    `json:"sid"`
	ContentID       string    `json:"content_id"`
	Hash            string    `json:"hash"`
	AnchorReference *string   `json:"anchor_reference,omitempty"`
	Anchored        bool      `json:"anchored"`
	Superseded      bool      `json:"superseded"`
	RecordedAt      time.Time `json:"recorded_at"`
}

type TrustBadgeDTO struct {
	ContentID       string    `json:"content_id"`
	TruncatedHash   string    `json:"truncated_hash"`
	Network         string    `json:"network"`
	AnchorReference string    `json:"anchor_reference"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// VerifyResultDTO is the public verification answer. An unknown hash is a
// normal result with Found=false, never an error.
type VerifyResultDTO struct {
	Found           bool       `json:"found"`
	Anchored        bool       `json:"anchored"`
	AnchorReference *string    `json:"anchor_reference,omitempty"`
	RecordedAt      *time.Time `json:"recorded_at,omitempty"`
}

func FingerprintToDTO(f *fingerprint.ContentFingerprint) *FingerprintDTO {
	if f == nil {
		return nil
	}
	return &FingerprintDTO{
		SID:             f.SID(),
		ContentID:       f.ContentID(),
		Hash:            f.Hash(),
		AnchorReference: f.AnchorReference(),
		Anchored:        f.Anchored(),
		Superseded:      f.Superseded(),
		RecordedAt:      f.RecordedAt(),
	}
}

func BadgeToDTO(b *fingerprint.TrustBadge) *TrustBadgeDTO {
	if b == nil {
		return nil
	}
	return &TrustBadgeDTO{
		ContentID:       b.ContentID,
		TruncatedHash:   b.TruncatedHash,
		Network:         b.Network,
		AnchorReference: b.AnchorReference,
		RecordedAt:      b.RecordedAt,
	}
}

package dto

import (
	"time"

	"lifeline/internal/domain/consent"
)

// DocumentDTO carries the agreement text a client must present. HTML is the
// sanitized rendering of the markdown source; the checksum covers the raw
// text, which is what the client echoes back at signing time.
type DocumentDTO struct {
	Version            int       `json:"version"`
	Text               string    `json:"text"`
	HTML               string    `json:"html,omitempty"`
	Checksum           string    `json:"checksum"`
	MinimumReadSeconds int       `json:"minimum_read_seconds"`
	ActivatedAt        time.Time `json:"activated_at"`
}

type SignatureDTO struct {
	SID                     string     `json:"sid"`
	UserID                  uint       `json:"user_id"`
	DocumentVersion         int        `json:"document_version"`
	DocumentChecksum        string     `json:"document_checksum"`
	SignedAt                time.Time  `json:"signed_at"`
	BiometricVerified       bool       `json:"biometric_verified"`
	ScrolledToBottom        bool       `json:"scrolled_to_bottom"`
	TimeSpentReadingSeconds int        `json:"time_spent_reading_seconds"`
	IsValid                 bool       `json:"is_valid"`
	RevokedAt               *time.Time `json:"revoked_at,omitempty"`
	RevokeReason            *string    `json:"revoke_reason,omitempty"`
}

// ConsentStatusDTO answers "may this user see protected content right now".
type ConsentStatusDTO struct {
	Valid           bool       `json:"valid"`
	DocumentVersion int        `json:"document_version"`
	SignedAt        *time.Time `json:"signed_at,omitempty"`
}

func DocumentToDTO(d *consent.Document, html string) *DocumentDTO {
	if d == nil {
		return nil
	}
	return &DocumentDTO{
		Version:            d.Version(),
		Text:               d.Text(),
		HTML:               html,
		Checksum:           d.Checksum(),
		MinimumReadSeconds: d.MinimumReadSeconds(),
		ActivatedAt:        d.ActivatedAt(),
	}
}

func SignatureToDTO(s *consent.Signature) *SignatureDTO {
	if s == nil {
		return nil
	}
	return &SignatureDTO{
		SID:                     s.SID(),
		UserID:                  s.UserID(),
		DocumentVersion:         s.DocumentVersion(),
		DocumentChecksum:        s.DocumentChecksum(),
		SignedAt:                s.SignedAt(),
		BiometricVerified:       s.BiometricVerified(),
		ScrolledToBottom:        s.ScrolledToBottom(),
		TimeSpentReadingSeconds: s.TimeSpentReadingSeconds(),
		IsValid:                 s.IsValid(),
		RevokedAt:               s.RevokedAt(),
		RevokeReason:            s.RevokeReason(),
	}
}

func SignaturesToDTOs(sigs []*consent.Signature) []*SignatureDTO {
	dtos := make([]*SignatureDTO, 0, len(sigs))
	for _, s := range sigs {
		dtos = append(dtos, SignatureToDTO(s))
	}
	return dtos
}

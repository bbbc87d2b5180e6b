package dto

import (
	"time"

	"lifeline/internal/domain/watermark"
)

type IssuanceDTO struct {
	SID        string    `json:"sid"`
	UUID       string    `json:"uuid"`
	ContentID  string    `json:"content_id"`
	ViewerID   uint      `json:"viewer_id"`
	EmbedToken string    `json:"embed_token"`
	Kind       string    `json:"kind"`
	IssuedAt   time.Time `json:"issued_at"`
}

// TraceResultDTO resolves a recovered embed token back to the one issuance
// that produced it.
type TraceResultDTO struct {
	Found    bool         `json:"found"`
	Issuance *IssuanceDTO `json:"issuance,omitempty"`
}

func IssuanceToDTO(i *watermark.Issuance) *IssuanceDTO {
	if i == nil {
		return nil
	}
	return &IssuanceDTO{
		SID:        i.SID(),
		UUID:       i.UUID(),
		ContentID:  i.ContentID(),
		ViewerID:   i.ViewerID(),
		EmbedToken: i.EmbedToken(),
		Kind:       i.Kind().String(),
		IssuedAt:   i.IssuedAt(),
	}
}

func IssuancesToDTOs(issuances []*watermark.Issuance) []*IssuanceDTO {
	dtos := make([]*IssuanceDTO, 0, len(issuances))
	for _, i := range issuances {
		dtos = append(dtos, IssuanceToDTO(i))
	}
	return dtos
}

package dto

import (
	"time"

	"lifeline/internal/domain/protection"
)

// AccessGrantDTO is the gateway's positive answer: the caller embeds the
// token before transmitting the media.
type AccessGrantDTO struct {
	Granted        bool      `json:"granted"`
	ContentID      string    `json:"content_id"`
	WatermarkSID   string    `json:"watermark_sid"`
	WatermarkToken string    `json:"watermark_token"`
	WatermarkKind  string    `json:"watermark_kind"`
	GrantedAt      time.Time `json:"granted_at"`
}

type AccessEntryDTO struct {
	SID          string    `json:"sid"`
	UserID       uint      `json:"user_id"`
	ContentID    string    `json:"content_id"`
	WatermarkSID string    `json:"watermark_sid"`
	GrantedAt    time.Time `json:"granted_at"`
}

func AccessEntryToDTO(e *protection.AccessEntry) *AccessEntryDTO {
	if e == nil {
		return nil
	}
	return &AccessEntryDTO{
		SID:          e.SID(),
		UserID:       e.UserID(),
		ContentID:    e.ContentID(),
		WatermarkSID: e.WatermarkSID(),
		GrantedAt:    e.GrantedAt(),
	}
}

func AccessEntriesToDTOs(entries []*protection.AccessEntry) []*AccessEntryDTO {
	dtos := make([]*AccessEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, AccessEntryToDTO(e))
	}
	return dtos
}

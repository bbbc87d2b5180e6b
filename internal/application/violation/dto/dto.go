package dto

import (
	"time"

	"lifeline/internal/domain/violation"
)

type ViolationRecordDTO struct {
	SID           string    `json:"sid"`
	SubscriberID  uint      `json:"subscriber_id"`
	CreatorID     uint      `json:"creator_id"`
	ContentID     string    `json:"content_id"`
	Kind          string    `json:"kind"`
	DetectedAt    time.Time `json:"detected_at"`
	WarningIssued bool      `json:"warning_issued"`
}

// ReportResultDTO is what the reporting client learns: the record stuck, the
// running total, and the policy decision it produced.
type ReportResultDTO struct {
	Record   *ViolationRecordDTO `json:"record"`
	Total    int64               `json:"total"`
	Decision string              `json:"decision"`
}

type ViolationStatusDTO struct {
	SubscriberID uint   `json:"subscriber_id"`
	Total        int64  `json:"total"`
	State        string `json:"state"`
}

func RecordToDTO(r *violation.Record) *ViolationRecordDTO {
	if r == nil {
		return nil
	}
	return &ViolationRecordDTO{
		SID:           r.SID(),
		SubscriberID:  r.SubscriberID(),
		CreatorID:     r.CreatorID(),
		ContentID:     r.ContentID(),
		Kind:          r.Kind().String(),
		DetectedAt:    r.DetectedAt(),
		WarningIssued: r.WarningIssued(),
	}
}

func RecordsToDTOs(records []*violation.Record) []*ViolationRecordDTO {
	dtos := make([]*ViolationRecordDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, RecordToDTO(r))
	}
	return dtos
}

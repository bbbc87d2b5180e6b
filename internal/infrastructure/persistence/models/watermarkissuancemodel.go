package models

import (
	"time"

	"lifeline/internal/shared/constants"
)

// WatermarkIssuanceModel represents the database persistence model for
// watermark issuances. Issuances are append-only and never updated.
type WatermarkIssuanceModel struct {
	ID         uint      `gorm:"primarykey"`
	SID        string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: wm_xxx"`
	UUID       string    `gorm:"uniqueIndex;not null;size:36"`
	ContentID  string    `gorm:"not null;size:100;index:idx_content_issued,priority:1"`
	ViewerID   uint      `gorm:"not null;index:idx_viewer"`
	EmbedToken string    `gorm:"uniqueIndex;not null;size:64"`
	Kind       string    `gorm:"not null;size:20"`
	IssuedAt   time.Time `gorm:"not null;index:idx_content_issued,priority:2"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (WatermarkIssuanceModel) TableName() string {
	return constants.TableWatermarkIssuances
}

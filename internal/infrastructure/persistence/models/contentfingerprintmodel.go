package models

import (
	"time"

	"lifeline/internal/shared/constants"
)

// ContentFingerprintModel represents the database persistence model for
// content fingerprints. This is the anti-corruption layer between domain and
// database.
type ContentFingerprintModel struct {
	ID              uint      `gorm:"primarykey"`
	SID             string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: fp_xxx"`
	ContentID       string    `gorm:"not null;size:100;index:idx_content_active,priority:1"`
	Hash            string    `gorm:"not null;size:64;index:idx_hash"`
	AnchorReference *string   `gorm:"size:200"`
	Anchored        bool      `gorm:"not null;default:false"`
	Superseded      bool      `gorm:"not null;default:false;index:idx_content_active,priority:2"`
	RecordedAt      time.Time `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (ContentFingerprintModel) TableName() string {
	return constants.TableContentFingerprints
}

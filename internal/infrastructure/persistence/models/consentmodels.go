package models

import (
	"time"

	"lifeline/internal/shared/constants"
)

// ConsentDocumentModel represents the database persistence model for
// versioned agreement documents. Exactly one row is active at a time.
type ConsentDocumentModel struct {
	ID                 uint      `gorm:"primarykey"`
	Version            int       `gorm:"uniqueIndex;not null"`
	Text               string    `gorm:"type:mediumtext;not null"`
	Checksum           string    `gorm:"not null;size:64"`
	MinimumReadSeconds int       `gorm:"not null"`
	Active             bool      `gorm:"not null;default:false;index:idx_active"`
	ActivatedAt        time.Time `gorm:"not null"`
	CreatedAt          time.Time
}

// TableName specifies the table name for GORM
func (ConsentDocumentModel) TableName() string {
	return constants.TableConsentDocuments
}

// ConsentSignatureModel represents the database persistence model for consent
// signatures. Rows are append-only except for the revocation fields.
type ConsentSignatureModel struct {
	ID                      uint      `gorm:"primarykey"`
	SID                     string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: nda_xxx"`
	UserID                  uint      `gorm:"not null;index:idx_user_version,priority:1"`
	DocumentVersion         int       `gorm:"not null;index:idx_user_version,priority:2"`
	DocumentChecksum        string    `gorm:"not null;size:64"`
	SignedAt                time.Time `gorm:"not null"`
	BiometricVerified       bool      `gorm:"not null"`
	ScrolledToBottom        bool      `gorm:"not null"`
	TimeSpentReadingSeconds int       `gorm:"not null"`
	IsValid                 bool      `gorm:"not null;default:true;index:idx_valid"`
	RevokedAt               *time.Time
	RevokeReason            *string `gorm:"size:500"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName specifies the table name for GORM
func (ConsentSignatureModel) TableName() string {
	return constants.TableConsentSignatures
}

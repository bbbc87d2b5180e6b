package models

import (
	"time"

	"gorm.io/datatypes"

	"lifeline/internal/shared/constants"
)

// AccessLogModel represents the database persistence model for protected
// content access grants. Append-only.
type AccessLogModel struct {
	ID           uint      `gorm:"primarykey"`
	SID          string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: acc_xxx"`
	UserID       uint      `gorm:"not null;index:idx_access_user"`
	ContentID    string    `gorm:"not null;size:100;index:idx_access_content"`
	WatermarkSID string    `gorm:"not null;size:50"`
	GrantedAt    time.Time `gorm:"not null"`
	Context      datatypes.JSON
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AccessLogModel) TableName() string {
	return constants.TableAccessLogs
}

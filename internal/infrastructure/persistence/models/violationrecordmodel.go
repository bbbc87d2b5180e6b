package models

import (
	"time"

	"lifeline/internal/shared/constants"
)

// ViolationRecordModel represents the database persistence model for capture
// violation records. The table is an append-only legal audit trail; rows are
// never deleted and only the warning flag is ever updated.
type ViolationRecordModel struct {
	ID            uint      `gorm:"primarykey"`
	SID           string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: vio_xxx"`
	SubscriberID  uint      `gorm:"not null;index:idx_subscriber"`
	CreatorID     uint      `gorm:"not null;index:idx_creator"`
	ContentID     string    `gorm:"not null;size:100;index:idx_violation_content"`
	Kind          string    `gorm:"not null;size:20"`
	DetectedAt    time.Time `gorm:"not null"`
	WarningIssued bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName specifies the table name for GORM
func (ViolationRecordModel) TableName() string {
	return constants.TableViolationRecords
}

// ViolationCounterModel is the per-subscriber atomic counter that backs
// read-after-write consistent policy evaluation. The counter is incremented
// in the same transaction as the record insert, so concurrent capture
// reports for one subscriber always observe strictly increasing totals.
type ViolationCounterModel struct {
	SubscriberID uint  `gorm:"primarykey;autoIncrement:false"`
	Total        int64 `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (ViolationCounterModel) TableName() string {
	return constants.TableViolationCounters
}

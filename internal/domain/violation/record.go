package violation

import (
	"fmt"
	"time"

	vo "lifeline/internal/domain/violation/valueobjects"
)

// Record is one detected capture incident. Records are append-only and never
// deduplicated: repeated captures of the same content by the same subscriber
// are distinct real-world incidents, and the log is a legal audit trail.
type Record struct {
	id            uint
	sid           string
	subscriberID  uint
	creatorID     uint
	contentID     string
	kind          vo.CaptureKind
	detectedAt    time.Time
	warningIssued bool
	createdAt     time.Time
}

// NewRecord creates a violation record for a detected capture event.
func NewRecord(sid string, subscriberID, creatorID uint, contentID string, kind vo.CaptureKind, detectedAt time.Time) (*Record, error) {
	if sid == "" {
		return nil, fmt.Errorf("record SID is required")
	}
	if subscriberID == 0 {
		return nil, fmt.Errorf("subscriber ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if contentID == "" {
		return nil, fmt.Errorf("content ID is required")
	}
	if !vo.ValidCaptureKinds[kind] {
		return nil, fmt.Errorf("invalid capture kind: %s", kind)
	}

	return &Record{
		sid:          sid,
		subscriberID: subscriberID,
		creatorID:    creatorID,
		contentID:    contentID,
		kind:         kind,
		detectedAt:   detectedAt,
		createdAt:    detectedAt,
	}, nil
}

// ReconstructRecordParams carries persisted fields for reconstruction.
type ReconstructRecordParams struct {
	ID            uint
	SID           string
	SubscriberID  uint
	CreatorID     uint
	ContentID     string
	Kind          vo.CaptureKind
	DetectedAt    time.Time
	WarningIssued bool
	CreatedAt     time.Time
}

// ReconstructRecord rebuilds a record from persistence.
func ReconstructRecord(p ReconstructRecordParams) (*Record, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if !vo.ValidCaptureKinds[p.Kind] {
		return nil, fmt.Errorf("invalid capture kind: %s", p.Kind)
	}

	return &Record{
		id:            p.ID,
		sid:           p.SID,
		subscriberID:  p.SubscriberID,
		creatorID:     p.CreatorID,
		contentID:     p.ContentID,
		kind:          p.Kind,
		detectedAt:    p.DetectedAt,
		warningIssued: p.WarningIssued,
		createdAt:     p.CreatedAt,
	}, nil
}

func (r *Record) ID() uint              { return r.id }
func (r *Record) SID() string           { return r.sid }
func (r *Record) SubscriberID() uint    { return r.subscriberID }
func (r *Record) CreatorID() uint       { return r.creatorID }
func (r *Record) ContentID() string     { return r.contentID }
func (r *Record) Kind() vo.CaptureKind  { return r.kind }
func (r *Record) DetectedAt() time.Time { return r.detectedAt }
func (r *Record) WarningIssued() bool   { return r.warningIssued }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }

// SetID assigns the database-generated ID after creation.
func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("record ID already set")
	}
	if id == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.id = id
	return nil
}

// MarkWarningIssued notes that this incident produced a warning to the
// subscriber.
func (r *Record) MarkWarningIssued() {
	r.warningIssued = true
}

package consent

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Document is one version of the governing agreement text. The legal text is
// versioned, checksummed data, never a hardcoded constant: advancing the
// active version silently invalidates all consent given for older versions.
type Document struct {
	id                     uint
	version                int
	text                   string
	checksum               string
	minimumReadSeconds     int
	requiresScrollToBottom bool
	active                 bool
	activatedAt            time.Time
	createdAt              time.Time
}

// ChecksumText computes the digest of the exact agreement text shown to a
// client, so the client can detect the document changing mid-read.
func ChecksumText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// NewDocument creates a new document version. Scroll-to-bottom is always
// required; it is carried as a field so the flow stays auditable.
func NewDocument(version int, text string, minimumReadSeconds int, now time.Time) (*Document, error) {
	if version <= 0 {
		return nil, fmt.Errorf("document version must be positive")
	}
	if text == "" {
		return nil, fmt.Errorf("document text is required")
	}
	if minimumReadSeconds <= 0 {
		return nil, fmt.Errorf("minimum read seconds must be positive")
	}

	return &Document{
		version:                version,
		text:                   text,
		checksum:               ChecksumText(text),
		minimumReadSeconds:     minimumReadSeconds,
		requiresScrollToBottom: true,
		active:                 true,
		activatedAt:            now,
		createdAt:              now,
	}, nil
}

// ReconstructDocumentParams carries persisted fields for reconstruction.
type ReconstructDocumentParams struct {
	ID                 uint
	Version            int
	Text               string
	Checksum           string
	MinimumReadSeconds int
	Active             bool
	ActivatedAt        time.Time
	CreatedAt          time.Time
}

// ReconstructDocument rebuilds a document from persistence. The stored
// checksum is verified against the stored text so a corrupted row cannot
// silently govern consent.
func ReconstructDocument(p ReconstructDocumentParams) (*Document, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	if p.Version <= 0 {
		return nil, fmt.Errorf("document version must be positive")
	}
	if got := ChecksumText(p.Text); got != p.Checksum {
		return nil, fmt.Errorf("document checksum mismatch for version %d", p.Version)
	}

	return &Document{
		id:                     p.ID,
		version:                p.Version,
		text:                   p.Text,
		checksum:               p.Checksum,
		minimumReadSeconds:     p.MinimumReadSeconds,
		requiresScrollToBottom: true,
		active:                 p.Active,
		activatedAt:            p.ActivatedAt,
		createdAt:              p.CreatedAt,
	}, nil
}

func (d *Document) ID() uint                     { return d.id }
func (d *Document) Version() int                 { return d.version }
func (d *Document) Text() string                 { return d.text }
func (d *Document) Checksum() string             { return d.checksum }
func (d *Document) MinimumReadSeconds() int      { return d.minimumReadSeconds }
func (d *Document) RequiresScrollToBottom() bool { return d.requiresScrollToBottom }
func (d *Document) Active() bool                 { return d.active }
func (d *Document) ActivatedAt() time.Time       { return d.activatedAt }
func (d *Document) CreatedAt() time.Time         { return d.createdAt }

// SetID assigns the database-generated ID after creation.
func (d *Document) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}

// Deactivate retires this version when a newer one is activated.
func (d *Document) Deactivate() {
	d.active = false
}

// ReadingMetrics is the client-reported evidence of how the agreement was
// read. Read time and scroll completion are independently checked
// preconditions; both must hold at sign time with no partial credit.
type ReadingMetrics struct {
	TimeSpentReadingSeconds int
	ScrolledToBottom        bool
}

// CheckReading validates reading metrics against this document's
// requirements. Returns the sentinel for the first failed precondition.
func (d *Document) CheckReading(metrics ReadingMetrics) error {
	if metrics.TimeSpentReadingSeconds < d.minimumReadSeconds {
		return ErrInsufficientReadTime
	}
	if d.requiresScrollToBottom && !metrics.ScrolledToBottom {
		return ErrIncompleteRead
	}
	return nil
}

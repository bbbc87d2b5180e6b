package fingerprint

import "time"

// TrustBadge is the display-safe, publicly shareable summary of an anchored
// fingerprint. A badge only exists once the external anchor is confirmed;
// pending verification is never presented as if it were confirmed.
type TrustBadge struct {
	ContentID       string
	TruncatedHash   string
	Network         string
	AnchorReference string
	RecordedAt      time.Time
}

// BadgeFor builds a TrustBadge for the fingerprint, or nil when the
// fingerprint is not anchored or has been superseded.
func BadgeFor(f *ContentFingerprint, network string) *TrustBadge {
	if f == nil || !f.Anchored() || f.Superseded() || f.AnchorReference() == nil {
		return nil
	}
	return &TrustBadge{
		ContentID:       f.ContentID(),
		TruncatedHash:   f.TruncatedHash(),
		Network:         network,
		AnchorReference: *f.AnchorReference(),
		RecordedAt:      f.RecordedAt(),
	}
}

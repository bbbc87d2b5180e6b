package valueobjects

import "fmt"

// CaptureKind classifies a detected capture event.
type CaptureKind string

const (
	CaptureScreenshot CaptureKind = "screenshot"
	CaptureRecording  CaptureKind = "recording"
	CaptureOther      CaptureKind = "other"
)

var ValidCaptureKinds = map[CaptureKind]bool{
	CaptureScreenshot: true,
	CaptureRecording:  true,
	CaptureOther:      true,
}

// NewCaptureKind validates and returns a capture kind.
func NewCaptureKind(value string) (CaptureKind, error) {
	k := CaptureKind(value)
	if !ValidCaptureKinds[k] {
		return "", fmt.Errorf("invalid capture kind: %q", value)
	}
	return k, nil
}

func (k CaptureKind) String() string { return string(k) }

package valueobjects

import "fmt"

// Kind classifies how a watermark is applied to media.
type Kind string

const (
	// KindVisible is an overlay the viewer can see.
	KindVisible Kind = "visible"
	// KindInvisible is embedded imperceptibly in the media.
	KindInvisible Kind = "invisible"
	// KindForensic is invisible and tuned for leak tracing.
	KindForensic Kind = "forensic"
)

var ValidKinds = map[Kind]bool{
	KindVisible:   true,
	KindInvisible: true,
	KindForensic:  true,
}

// NewKind validates and returns a watermark kind.
func NewKind(value string) (Kind, error) {
	k := Kind(value)
	if !ValidKinds[k] {
		return "", fmt.Errorf("invalid watermark kind: %q", value)
	}
	return k, nil
}

func (k Kind) String() string { return string(k) }

// Perceptible reports whether the watermark is meant to be seen by the viewer.
func (k Kind) Perceptible() bool { return k == KindVisible }

package watermark

import "errors"

var (
	ErrIssuanceNotFound = errors.New("watermark issuance not found")
	ErrEmbedFailed      = errors.New("failed to embed watermark in media")
	ErrInvalidKind      = errors.New("invalid watermark kind")
)

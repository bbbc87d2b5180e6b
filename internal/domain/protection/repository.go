package protection

import "context"

// AccessLogRepository persists access-log entries, append-only.
type AccessLogRepository interface {
	Create(ctx context.Context, entry *AccessEntry) error
	ListByContent(ctx context.Context, contentID string, page, pageSize int) ([]*AccessEntry, int64, error)
}

package violation

import "context"

// Repository persists violation records and the per-subscriber counter.
type Repository interface {
	// CreateAndCount appends the record and atomically increments the
	// subscriber's violation counter in the same transaction, returning the
	// new total. Two concurrent calls for the same subscriber must observe
	// distinct, strictly increasing totals; policy evaluation for an event
	// always sees the count that includes that event.
	CreateAndCount(ctx context.Context, record *Record) (int64, error)

	CountBySubscriber(ctx context.Context, subscriberID uint) (int64, error)
	ListBySubscriber(ctx context.Context, subscriberID uint, page, pageSize int) ([]*Record, int64, error)
	MarkWarningIssued(ctx context.Context, recordID uint) error
}

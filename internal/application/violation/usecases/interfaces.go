package usecases

import "context"

// EnforcementNotifier signals the account service that a subscriber must be
// suspended. Account state belongs to that service; this side only decides
// and signals.
type EnforcementNotifier interface {
	EnforcementTriggered(ctx context.Context, subscriberID uint, contentID string, total int64) error
}

// OpsMailer alerts the operations mailbox about warning and enforcement
// transitions.
type OpsMailer interface {
	SendWarningNotice(subscriberID uint, contentID string, total int64) error
	SendEnforcementNotice(subscriberID uint, contentID string, total int64) error
}

package usecases

import "context"

// BiometricVerifier checks an identity proof with the platform's
// verification service.
type BiometricVerifier interface {
	Verify(ctx context.Context, userID uint, proof string) (bool, error)
}

// AccountNotifier reports consent transitions to the account service.
// Notification failures never roll back the consent record itself.
type AccountNotifier interface {
	ConsentSatisfied(ctx context.Context, userID uint, version int) error
	ConsentRevoked(ctx context.Context, userID uint, version int) error
}

// MarkdownRenderer turns agreement markdown into sanitized HTML.
type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// Package account notifies the account service about trust events.
package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lifeline/internal/shared/logger"
)

const defaultNotifyTimeout = 10 * time.Second

// HTTPNotifier posts trust events to the account service. Notifications are
// best-effort from the caller's point of view; persistence always happens
// first.
type HTTPNotifier struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPNotifier(endpoint, apiKey string, timeoutSeconds int, logger logger.Interface) *HTTPNotifier {
	timeout := defaultNotifyTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	return &HTTPNotifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ConsentSatisfied reports that the user holds valid consent for the given
// document version.
func (n *HTTPNotifier) ConsentSatisfied(ctx context.Context, userID uint, version int) error {
	payload := map[string]interface{}{
		"user_id":          userID,
		"document_version": version,
	}
	return n.post(ctx, "/v1/events/consent-satisfied", payload)
}

// ConsentRevoked reports that the user withdrew consent.
func (n *HTTPNotifier) ConsentRevoked(ctx context.Context, userID uint, version int) error {
	payload := map[string]interface{}{
		"user_id":          userID,
		"document_version": version,
	}
	return n.post(ctx, "/v1/events/consent-revoked", payload)
}

// EnforcementTriggered reports that a subscriber crossed the violation limit
// and must lose access.
func (n *HTTPNotifier) EnforcementTriggered(ctx context.Context, subscriberID uint, contentID string, total int64) error {
	payload := map[string]interface{}{
		"subscriber_id":   subscriberID,
		"content_id":      contentID,
		"violation_total": total,
	}
	return n.post(ctx, "/v1/events/enforcement-triggered", payload)
}

func (n *HTTPNotifier) post(ctx context.Context, path string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		n.logger.Errorw("account service rejected notification", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("account service returned status %d", resp.StatusCode)
	}

	return nil
}

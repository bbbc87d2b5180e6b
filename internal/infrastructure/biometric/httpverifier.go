// Package biometric verifies identity proofs against the platform's
// verification service.
package biometric

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lifeline/internal/shared/logger"
)

const (
	maxVerifyResponseSize = 1 << 20

	defaultVerifyTimeout = 10 * time.Second
)

type verifyRequest struct {
	UserID uint   `json:"user_id"`
	Proof  string `json:"proof"`
}

type verifyResponse struct {
	Verified bool `json:"verified"`
}

// HTTPVerifier calls the verification service over HTTP.
type HTTPVerifier struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPVerifier(endpoint string, timeoutSeconds int, logger logger.Interface) *HTTPVerifier {
	timeout := defaultVerifyTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	return &HTTPVerifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Verify submits the proof for the given user. A service failure is an
// error, not a silent false, so callers can distinguish rejection from
// unavailability.
func (v *HTTPVerifier) Verify(ctx context.Context, userID uint, proof string) (bool, error) {
	body, err := json.Marshal(verifyRequest{UserID: userID, Proof: proof})
	if err != nil {
		return false, fmt.Errorf("failed to marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint+"/v1/verify", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxVerifyResponseSize))
	if err != nil {
		return false, fmt.Errorf("failed to read verify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		v.logger.Errorw("verification service returned error", "status", resp.StatusCode, "user_id", userID)
		return false, fmt.Errorf("verification service returned status %d", resp.StatusCode)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return false, fmt.Errorf("failed to parse verify response: %w", err)
	}

	return parsed.Verified, nil
}

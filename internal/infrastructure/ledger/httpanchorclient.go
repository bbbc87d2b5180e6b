package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	appledger "lifeline/internal/application/fingerprint/ledger"
	"lifeline/internal/shared/biztime"
	"lifeline/internal/shared/logger"
)

const (
	// Maximum response body size for the ledger API (1MB)
	maxLedgerResponseSize = 1 << 20

	defaultAnchorTimeout = 10 * time.Second
)

// anchorRequest is the ledger service submission payload.
type anchorRequest struct {
	Hash    string `json:"hash"`
	Network string `json:"network"`
}

// anchorResponse is the ledger service confirmation payload.
type anchorResponse struct {
	Reference  string `json:"reference"`
	Network    string `json:"network"`
	AnchoredAt string `json:"anchored_at"`
}

// HTTPAnchorClient anchors content hashes against a ledger HTTP API.
type HTTPAnchorClient struct {
	endpoint   string
	apiKey     string
	network    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPAnchorClient(endpoint, apiKey, network string, timeoutSeconds int, logger logger.Interface) *HTTPAnchorClient {
	timeout := defaultAnchorTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	return &HTTPAnchorClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		network:  network,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *HTTPAnchorClient) Anchor(ctx context.Context, hash string) (*appledger.AnchorReceipt, error) {
	body, err := json.Marshal(anchorRequest{Hash: hash, Network: c.network})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal anchor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/anchors", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build anchor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			c.logger.Warnw("ledger anchor request timed out", "network", c.network)
			return nil, appledger.ErrAnchorTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, appledger.ErrAnchorTimeout
		}
		return nil, fmt.Errorf("anchor request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLedgerResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read anchor response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Errorw("ledger rejected anchor request", "status", resp.StatusCode)
		return nil, fmt.Errorf("ledger returned status %d", resp.StatusCode)
	}

	var parsed anchorResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse anchor response: %w", err)
	}
	if parsed.Reference == "" {
		return nil, fmt.Errorf("ledger response missing anchor reference")
	}

	anchoredAt := biztime.NowUTC()
	if parsed.AnchoredAt != "" {
		if t, err := time.Parse(time.RFC3339, parsed.AnchoredAt); err == nil {
			anchoredAt = t.UTC()
		}
	}

	network := parsed.Network
	if network == "" {
		network = c.network
	}

	return &appledger.AnchorReceipt{
		Reference:  parsed.Reference,
		Network:    network,
		AnchoredAt: anchoredAt,
	}, nil
}

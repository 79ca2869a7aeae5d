package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"web-larek/internal/domain"

	"go.uber.org/zap"
)

// Client talks to the storefront backend: catalog download and order
// submission. Callers own the fallback behavior; the client just reports
// failures as errors.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type catalogResponse struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

// FetchCatalog downloads the full product list.
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/product/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	var payload catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	c.logger.Debug("catalog fetched", zap.Int("items", len(payload.Items)))
	return payload.Items, nil
}

// SubmitOrder posts the order and returns the backend confirmation with
// the server-side total.
func (c *Client) SubmitOrder(ctx context.Context, order domain.Order) (domain.OrderResult, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order/", bytes.NewReader(body))
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.OrderResult{}, fmt.Errorf("order request returned status %d", resp.StatusCode)
	}

	var result domain.OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.OrderResult{}, fmt.Errorf("failed to decode order response: %w", err)
	}

	return result, nil
}

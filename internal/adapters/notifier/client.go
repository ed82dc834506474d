// Package notifier forwards handled webhook events to a downstream HTTP
// endpoint.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/logger"
)

// APIKeyHeader carries the shared secret on every forwarded event.
const APIKeyHeader = "X-Webhook-Secret"

// Client implements ports.EventNotifier.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a notifier posting to url. A nil httpClient gets a
// default one with a 15s timeout.
func NewClient(url, apiKey string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		url:        url,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     log.Named("notifier"),
	}
}

// Notify posts the notification as JSON. Any non-2xx answer is an error.
func (c *Client) Notify(ctx context.Context, notification domain.EventNotification) error {
	jsonBody, err := json.Marshal(notification)
	if err != nil {
		return domain.NewServiceError(domain.ErrNotifierFailed,
			"failed to marshal payload", "MARSHAL_ERROR")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return domain.NewServiceError(domain.ErrNotifierFailed,
			"failed to create request", "REQUEST_ERROR")
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if reqID := logger.RequestIDFrom(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewServiceError(domain.ErrNotifierFailed,
			"request failed: "+err.Error(), "HTTP_ERROR")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.NewServiceError(domain.ErrNotifierFailed,
			fmt.Sprintf("downstream returned status %d: %s", resp.StatusCode, string(body)),
			"DOWNSTREAM_ERROR")
	}

	logger.WithContext(ctx, c.logger).Debug("event forwarded",
		zap.String("event", notification.Event),
		zap.String("event_id", notification.EventID),
	)
	return nil
}

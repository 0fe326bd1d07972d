package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Message is one transactional email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// Client exposes transactional email delivery. Callers treat delivery as
// best-effort; errors are for logging, never for aborting the caller.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPClient delivers messages through an HTTP email API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP mailer with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mailer url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mailer url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the message to the email API.
func (c *HTTPClient) Send(ctx context.Context, msg Message) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/send")

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("mailer request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("mailer error: %s", resp.Status)
	}
	return nil
}

// NoopClient discards messages. Used when no email API is configured.
type NoopClient struct {
	logger *slog.Logger
}

// NewNoopClient creates a mailer that only logs.
func NewNoopClient(logger *slog.Logger) *NoopClient {
	return &NoopClient{logger: logger}
}

// Send logs the message instead of delivering it.
func (c *NoopClient) Send(_ context.Context, msg Message) error {
	c.logger.Info("email delivery skipped", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}

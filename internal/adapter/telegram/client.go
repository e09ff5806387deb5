package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrNotConfigured indicates the bot token or chat id is missing; sends are
// skipped without being treated as delivery failures worth retrying.
var ErrNotConfigured = errors.New("telegram notifier is not configured")

// Client exposes the single outbound operation used by the service.
type Client interface {
	SendMessage(ctx context.Context, text string) error
}

// HTTPClient implements Client via the Telegram Bot API.
type HTTPClient struct {
	baseURL    *url.URL
	token      string
	chatID     string
	httpClient *http.Client
	logger     *slog.Logger
}

// request mirrors the sendMessage JSON payload.
type request struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// response mirrors the Bot API envelope; success is signaled by ok=true.
type response struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// NewHTTPClient creates a Bot API client with default timeout.
func NewHTTPClient(baseURL, token, chatID string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse telegram api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("telegram api url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		token:   token,
		chatID:  chatID,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SendMessage posts text to the configured chat.
func (c *HTTPClient) SendMessage(ctx context.Context, text string) error {
	if c.token == "" || c.chatID == "" {
		return ErrNotConfigured
	}

	endpoint := *c.baseURL
	endpoint.Path = fmt.Sprintf("/bot%s/sendMessage", c.token)

	payload, err := json.Marshal(request{ChatID: c.chatID, Text: text, ParseMode: "HTML"})
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Errorf("telegram response malformed: %w", err)
	}
	if !data.OK {
		c.logger.Error("telegram send failed",
			slog.Int("status", resp.StatusCode),
			slog.String("description", data.Description),
		)
		return fmt.Errorf("telegram error: %s", data.Description)
	}

	return nil
}

// Package telegram provides a lightweight Telegram Bot API client used for
// admin notifications. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when the bot token or chat ID is missing.
var ErrNotConfigured = errors.New("telegram: not configured")

// Notifier delivers a text notification to the admin chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Client is a raw-HTTP Telegram Bot API client.
type Client struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. With an empty token or chat ID every call
// returns ErrNotConfigured, so notifications can be disabled by leaving the
// environment unset.
func NewClient(botToken, chatID string) *Client {
	return &Client{
		botToken:   botToken,
		chatID:     chatID,
		baseURL:    "https://api.telegram.org",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify sends an HTML-formatted message to the configured admin chat.
func (c *Client) Notify(ctx context.Context, text string) error {
	if c.botToken == "" || c.chatID == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(map[string]string{
		"chat_id":    c.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Description string `json:"description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("telegram sendMessage: %s", errResp.Description)
	}
	return nil
}

// Package notifiers delivers composed digests to a messaging provider.
package notifiers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aqi-notifier/internal/models"
	"aqi-notifier/pkg/logger"
)

const TelegramBaseURL = "https://api.telegram.org"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TelegramNotifier posts messages to one chat through the Bot API.
type TelegramNotifier struct {
	baseURL    string
	token      string
	chatID     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewTelegramNotifier(baseURL, token, chatID string, l *logger.Logger, httpClient HTTPClient) *TelegramNotifier {
	if baseURL == "" {
		baseURL = TelegramBaseURL
	}
	return &TelegramNotifier{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		chatID:     chatID,
		httpClient: httpClient,
		l:          l,
	}
}

func (t *TelegramNotifier) Name() string {
	return "telegram"
}

// Validate reports missing credentials as a ConfigError.
func (t *TelegramNotifier) Validate() error {
	if t.token == "" || t.chatID == "" {
		return &models.ConfigError{Message: "Missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID"}
	}
	return nil
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Send delivers text to the configured chat. A non-2xx answer is returned as *models.DeliveryError.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:                t.chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	u := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	t.l.Info("sending telegram message", map[string]any{
		"chat_id": t.chatID,
		"length":  len(text),
	})

	resp, err := t.httpClient.Do(req)
	if err != nil {
		// The token is part of the URL; do not let it leak through url.Error.
		return fmt.Errorf("failed to do request: %s", redact(err.Error(), t.token))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &models.DeliveryError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	t.l.Info("telegram message delivered", map[string]any{
		"status": resp.StatusCode,
	})

	return nil
}

func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, "***")
}

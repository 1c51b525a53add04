package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"news-summarizer-client/internal/domain/model"
	"news-summarizer-client/internal/domain/ports"
)

const embedColor = 0x2ECC71

// Webhook posts sweep digests to a Discord channel webhook.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a Discord webhook notifier. A zero timeout means none.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts the notification as a single embed.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	timestamp := notification.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	embed := map[string]any{
		"title":       truncate(notification.Title, 256),
		"description": truncate(notification.Description, 4096),
		"timestamp":   timestamp.UTC().Format(time.RFC3339),
		"color":       embedColor,
		"footer": map[string]string{
			"text": "📰 News Summarizer Client",
		},
	}
	if fields := convertFields(notification.Fields); fields != nil {
		embed["fields"] = fields
	}

	body, err := json.Marshal(map[string]any{
		"content": "",
		"embeds":  []map[string]any{embed},
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if w.logger != nil {
		w.logger.Info(ctx, "sweep digest sent to discord", "fields", len(notification.Fields))
	}
	return nil
}

// Discord allows at most 25 fields per embed.
func convertFields(fields []model.NotificationField) []map[string]any {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) > 25 {
		fields = fields[:25]
	}

	result := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		result = append(result, map[string]any{
			"name":   truncate(field.Name, 256),
			"value":  truncate(field.Value, 1024),
			"inline": field.Inline,
		})
	}
	return result
}

// truncate caps value at limit characters, the unit Discord counts in.
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}

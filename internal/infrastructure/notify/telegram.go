// Package notify contains outbound notification channels for new contact
// requests. Each channel implements ports.Notifier and is fanned out to by
// the queue dispatcher.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier posts a formatted message about a new contact request to a
// Telegram chat via the Bot API.
type TelegramNotifier struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
	log      zerolog.Logger
}

func NewTelegramNotifier(botToken, chatID string, log zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPIBase,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

func (t *TelegramNotifier) Channel() string { return "telegram" }

func (t *TelegramNotifier) Notify(ctx context.Context, contact domain.ContactRequest) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       formatMessage(contact),
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram api status %d: %s", resp.StatusCode, body)
	}

	t.log.Info().Str("contact_id", contact.ID).Msg("telegram notification sent")
	return nil
}

func formatMessage(contact domain.ContactRequest) string {
	var b strings.Builder
	b.WriteString("🔔 <b>New contact request</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Name:</b> %s\n", escapeHTML(contact.Name))
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", escapeHTML(contact.Email))
	if contact.Phone != "" {
		fmt.Fprintf(&b, "📱 <b>Phone:</b> %s\n", escapeHTML(contact.Phone))
	}
	fmt.Fprintf(&b, "\n💬 <b>Message:</b>\n%s\n", escapeHTML(contact.Message))
	fmt.Fprintf(&b, "\n🕒 <b>Date:</b> %s", contact.CreatedAt.Format(time.RFC1123))
	return b.String()
}

// escapeHTML covers the characters Telegram's HTML parse mode rejects.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// Package bridge relays messages from Discord announcement channels into a
// Telegram chat.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const telegramAPIBase = "https://api.telegram.org"

// telegramMessageLimit is Telegram's hard cap on message text length.
const telegramMessageLimit = 4096

const truncationMarker = "\n\n_(truncated)_"

// Sender delivers one formatted message to the destination chat.
type Sender interface {
	Send(ctx context.Context, text string) error
}

type telegramSender struct {
	logger *zap.SugaredLogger
	token  string
	chatID string
	base   string
	http   *http.Client
}

func NewTelegramSender(logger *zap.SugaredLogger, token string, chatID string) Sender {
	return &telegramSender{
		logger: logger,
		token:  token,
		chatID: chatID,
		base:   telegramAPIBase,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *telegramSender) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]any{
		"chat_id":                  s.chatID,
		"text":                     Truncate(text),
		"parse_mode":               "Markdown",
		"disable_web_page_preview": true,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.base, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// The request URL embeds the bot token, so errors report status only.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage returned status %d", resp.StatusCode)
	}
	return nil
}

// Truncate caps text at Telegram's message limit, marking the cut so readers
// know to check Discord for the full text. The cut backs off to a rune
// boundary; a split rune would make the payload invalid UTF-8 and Telegram
// rejects those outright.
func Truncate(text string) string {
	if len(text) <= telegramMessageLimit {
		return text
	}
	cut := telegramMessageLimit - len(truncationMarker)
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + truncationMarker
}

// Chat identifies one Telegram chat seen in the bot's pending updates.
type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// DiscoverChats lists the chats that have recently messaged the bot. It
// exists for first-time setup, before the chat id is known: post anything in
// the target group, then run this to read the id off the update queue.
func DiscoverChats(ctx context.Context, token string) ([]Chat, error) {
	return discoverChats(ctx, &http.Client{Timeout: 30 * time.Second}, telegramAPIBase, token)
}

func discoverChats(ctx context.Context, client *http.Client, base string, token string) ([]Chat, error) {
	url := fmt.Sprintf("%s/bot%s/getUpdates", base, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build telegram request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("telegram getUpdates returned status %d", resp.StatusCode)
	}

	var updates struct {
		Result []struct {
			Message struct {
				Chat Chat `json:"chat"`
			} `json:"message"`
			MyChatMember struct {
				Chat Chat `json:"chat"`
			} `json:"my_chat_member"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&updates); err != nil {
		return nil, fmt.Errorf("failed to parse telegram updates: %w", err)
	}

	var chats []Chat
	seen := make(map[int64]bool)
	for _, update := range updates.Result {
		chat := update.Message.Chat
		if chat.ID == 0 {
			chat = update.MyChatMember.Chat
		}
		if chat.ID == 0 || seen[chat.ID] {
			continue
		}
		seen[chat.ID] = true
		chats = append(chats, chat)
	}
	return chats, nil
}

// loggingSender stands in for Telegram during dry runs: it logs what would
// have been sent and succeeds.
type loggingSender struct {
	logger *zap.SugaredLogger
}

func NewLoggingSender(logger *zap.SugaredLogger) Sender {
	return &loggingSender{logger: logger}
}

func (s *loggingSender) Send(_ context.Context, text string) error {
	s.logger.Infow("dry run, would send to telegram", "length", len(text), "text", Truncate(text))
	return nil
}

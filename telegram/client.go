// Package telegram is a minimal Bot API client covering the handful of
// methods the bot needs: long-polling, sending and editing messages,
// re-sending stored audio and answering callback queries.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matteomarino16/telegram-audio-bot/core/view"
)

// Client is a Telegram Bot API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new API client for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		baseURL: "https://api.telegram.org",
		token:   token,
		httpClient: &http.Client{
			Timeout: time.Second * 90, // must outlast the getUpdates long poll
		},
	}
}

// SetBaseURL overrides the API base URL (local bot API server, tests).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SetTimeout sets the underlying HTTP client timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// call invokes one Bot API method with a JSON body and decodes the result
// envelope into out (when out is non-nil).
func (c *Client) call(ctx context.Context, method string, params interface{}, out interface{}) error {
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode %s params: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("%s failed: %s (code %d)", method, envelope.Description, envelope.ErrorCode)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

// GetUpdates long-polls for new updates starting at offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout int) ([]Update, error) {
	params := struct {
		Offset  int64 `json:"offset"`
		Timeout int   `json:"timeout"`
	}{Offset: offset, Timeout: timeout}

	var updates []Update
	if err := c.call(ctx, "getUpdates", params, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SendMessage sends a text message with an optional inline keyboard and
// returns the new message id.
func (c *Client) SendMessage(chatID int64, text string, keyboard [][]view.Button) (int, error) {
	params := struct {
		ChatID      int64                 `json:"chat_id"`
		Text        string                `json:"text"`
		ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	}{ChatID: chatID, Text: text, ReplyMarkup: toReplyMarkup(keyboard)}

	var msg Message
	if err := c.call(context.Background(), "sendMessage", params, &msg); err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

// EditMessage rewrites the text and keyboard of an existing message.
func (c *Client) EditMessage(chatID int64, messageID int, text string, keyboard [][]view.Button) error {
	params := struct {
		ChatID      int64                 `json:"chat_id"`
		MessageID   int                   `json:"message_id"`
		Text        string                `json:"text"`
		ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	}{ChatID: chatID, MessageID: messageID, Text: text, ReplyMarkup: toReplyMarkup(keyboard)}

	return c.call(context.Background(), "editMessageText", params, nil)
}

// SendAudio re-sends a stored audio file by its opaque file id.
func (c *Client) SendAudio(chatID int64, fileID, caption string, keyboard [][]view.Button) error {
	params := struct {
		ChatID      int64                 `json:"chat_id"`
		Audio       string                `json:"audio"`
		Caption     string                `json:"caption,omitempty"`
		ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	}{ChatID: chatID, Audio: fileID, Caption: caption, ReplyMarkup: toReplyMarkup(keyboard)}

	return c.call(context.Background(), "sendAudio", params, nil)
}

// AnswerCallback acknowledges a callback query, optionally showing an
// alert popup.
func (c *Client) AnswerCallback(callbackID, text string, showAlert bool) error {
	params := struct {
		CallbackQueryID string `json:"callback_query_id"`
		Text            string `json:"text,omitempty"`
		ShowAlert       bool   `json:"show_alert,omitempty"`
	}{CallbackQueryID: callbackID, Text: text, ShowAlert: showAlert}

	return c.call(context.Background(), "answerCallbackQuery", params, nil)
}

// PinMessage pins a message in the chat without notifying members.
func (c *Client) PinMessage(chatID int64, messageID int) error {
	params := struct {
		ChatID              int64 `json:"chat_id"`
		MessageID           int   `json:"message_id"`
		DisableNotification bool  `json:"disable_notification"`
	}{ChatID: chatID, MessageID: messageID, DisableNotification: true}

	return c.call(context.Background(), "pinChatMessage", params, nil)
}

// toReplyMarkup converts view button rows into an inline keyboard. Empty
// keyboards map to nil so the field is omitted from the payload.
func toReplyMarkup(rows [][]view.Button) *InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}

	keyboard := make([][]InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, InlineKeyboardButton{
				Text:         b.Label,
				CallbackData: b.Action,
				URL:          b.URL,
			})
		}
		keyboard = append(keyboard, buttons)
	}
	return &InlineKeyboardMarkup{InlineKeyboard: keyboard}
}

package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteomarino16/telegram-audio-bot/core/view"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-token")
	client.SetBaseURL(srv.URL)
	return client
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true,"result":{"message_id":42}}`))
	})

	keyboard := [][]view.Button{
		{{Label: "Play", Action: "play:1"}},
		{{Label: "Share", URL: "https://t.me/share"}},
	}
	messageID, err := client.SendMessage(10, "hello", keyboard)
	require.NoError(t, err)
	assert.Equal(t, 42, messageID)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, float64(10), gotBody["chat_id"])
	assert.Equal(t, "hello", gotBody["text"])

	markup, ok := gotBody["reply_markup"].(map[string]interface{})
	require.True(t, ok)
	rows, ok := markup["inline_keyboard"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 2)
}

func TestSendMessageWithoutKeyboardOmitsMarkup(t *testing.T) {
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	})

	_, err := client.SendMessage(10, "hello", nil)
	require.NoError(t, err)
	assert.NotContains(t, gotBody, "reply_markup")
}

func TestAPIErrorEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found","error_code":400}`))
	})

	_, err := client.SendMessage(10, "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
	assert.Contains(t, err.Error(), "400")
}

func TestGetUpdates(t *testing.T) {
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":7,"message":{"message_id":1,"from":{"id":1},"chat":{"id":10},"text":"/start"}}
		]}`))
	})

	updates, err := client.GetUpdates(context.Background(), 5, 30)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, int64(7), updates[0].UpdateID)
	require.NotNil(t, updates[0].Message)
	assert.Equal(t, "/start", updates[0].Message.Text)

	assert.Equal(t, float64(5), gotBody["offset"])
	assert.Equal(t, float64(30), gotBody["timeout"])
}

func TestToReplyMarkup(t *testing.T) {
	assert.Nil(t, toReplyMarkup(nil))
	assert.Nil(t, toReplyMarkup([][]view.Button{}))

	markup := toReplyMarkup([][]view.Button{
		{{Label: "Play", Action: "play:1"}, {Label: "Share", URL: "https://t.me/share"}},
	})
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Equal(t, "play:1", row[0].CallbackData)
	assert.Empty(t, row[0].URL)
	assert.Equal(t, "https://t.me/share", row[1].URL)
	assert.Empty(t, row[1].CallbackData)
}

package bot

import (
	"github.com/matteomarino16/telegram-audio-bot/core/view"
	"github.com/matteomarino16/telegram-audio-bot/model"
)

// Transport is the narrow surface the router needs from the messaging
// platform. The Telegram client implements it; tests use a fake.
type Transport interface {
	// SendMessage sends a new message and returns its id.
	SendMessage(chatID int64, text string, keyboard [][]view.Button) (int, error)
	// EditMessage rewrites an existing message in place.
	EditMessage(chatID int64, messageID int, text string, keyboard [][]view.Button) error
	// SendAudio re-emits a stored media reference as a playable audio message.
	SendAudio(chatID int64, fileID, caption string, keyboard [][]view.Button) error
	// AnswerCallback acknowledges a button press, optionally with an alert.
	AnswerCallback(callbackID, text string, showAlert bool) error
	// PinMessage pins a message in the chat. Failures are non-fatal.
	PinMessage(chatID int64, messageID int) error
}

// RequestPublisher receives newly submitted track requests, e.g. to push
// them to connected admin dashboards. May be nil.
type RequestPublisher interface {
	PublishRequest(req *model.TrackRequest)
}

package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/matteomarino16/telegram-audio-bot/core/bot"
	"github.com/matteomarino16/telegram-audio-bot/logger"
)

// Poller drives the bot: it long-polls getUpdates and hands each update to
// the router as an intent. Updates are processed strictly in order, one at
// a time, so no two intents mutate the store concurrently.
type Poller struct {
	client  *Client
	router  *bot.Router
	timeout int
}

// NewPoller creates a Poller. timeout is the long-poll timeout in seconds.
func NewPoller(client *Client, router *bot.Router, timeout int) *Poller {
	return &Poller{client: client, router: router, timeout: timeout}
}

// Run polls until the context is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	var offset int64

	logger.Info("Bot polling started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("getUpdates failed", logger.ErrorField(err))
			time.Sleep(3 * time.Second)
			continue
		}

		for _, update := range updates {
			offset = update.UpdateID + 1
			if intent, ok := UpdateToIntent(update); ok {
				p.router.HandleIntent(intent)
			}
		}
	}
}

// UpdateToIntent converts a raw update into the router's intent union.
// ok is false for update kinds the bot does not handle.
func UpdateToIntent(update Update) (bot.Intent, bool) {
	if cq := update.CallbackQuery; cq != nil {
		if cq.Message == nil {
			// Callback from an inline-mode message; nothing to edit.
			return nil, false
		}
		return bot.CallbackIntent{
			CallbackID: cq.ID,
			ChatID:     cq.Message.Chat.ID,
			MessageID:  cq.Message.MessageID,
			UserID:     cq.From.ID,
			Data:       cq.Data,
		}, true
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil, false
	}

	if msg.Audio != nil {
		return bot.AudioIntent{
			ChatID:    msg.Chat.ID,
			UserID:    msg.From.ID,
			FileID:    msg.Audio.FileID,
			Performer: msg.Audio.Performer,
			Title:     msg.Audio.Title,
			FileName:  msg.Audio.FileName,
			Caption:   msg.Caption,
		}, true
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil, false
	}

	if strings.HasPrefix(text, "/") {
		command, args := splitCommand(text)
		return bot.CommandIntent{
			ChatID:    msg.Chat.ID,
			UserID:    msg.From.ID,
			Username:  msg.From.Username,
			FirstName: msg.From.FirstName,
			Command:   command,
			Args:      args,
		}, true
	}

	return bot.TextIntent{
		ChatID: msg.Chat.ID,
		UserID: msg.From.ID,
		Text:   text,
	}, true
}

// splitCommand splits "/search@MyBot blue moon" into ("search", "blue moon").
func splitCommand(text string) (command, args string) {
	command, args, _ = strings.Cut(text[1:], " ")
	command, _, _ = strings.Cut(command, "@")
	return command, strings.TrimSpace(args)
}

package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteomarino16/telegram-audio-bot/core/bot"
)

func TestUpdateToIntent(t *testing.T) {
	tests := []struct {
		name   string
		update Update
		want   bot.Intent
		wantOK bool
	}{
		{
			name: "slash command with bot mention and args",
			update: Update{
				Message: &Message{
					From: &User{ID: 1, Username: "ada42", FirstName: "Ada"},
					Chat: Chat{ID: 10},
					Text: "/search@MyBot blue moon",
				},
			},
			want: bot.CommandIntent{
				ChatID:    10,
				UserID:    1,
				Username:  "ada42",
				FirstName: "Ada",
				Command:   "search",
				Args:      "blue moon",
			},
			wantOK: true,
		},
		{
			name: "bare command",
			update: Update{
				Message: &Message{
					From: &User{ID: 1},
					Chat: Chat{ID: 10},
					Text: "/start",
				},
			},
			want: bot.CommandIntent{ChatID: 10, UserID: 1, Command: "start"},
			wantOK: true,
		},
		{
			name: "free text becomes a search",
			update: Update{
				Message: &Message{
					From: &User{ID: 1},
					Chat: Chat{ID: 10},
					Text: "  blue moon  ",
				},
			},
			want:   bot.TextIntent{ChatID: 10, UserID: 1, Text: "blue moon"},
			wantOK: true,
		},
		{
			name: "audio upload with caption",
			update: Update{
				Message: &Message{
					From:    &User{ID: 1},
					Chat:    Chat{ID: 10},
					Caption: "Artist - Title",
					Audio: &Audio{
						FileID:    "file-abc",
						Performer: "Artist",
						Title:     "Title",
						FileName:  "song.mp3",
					},
				},
			},
			want: bot.AudioIntent{
				ChatID:    10,
				UserID:    1,
				FileID:    "file-abc",
				Performer: "Artist",
				Title:     "Title",
				FileName:  "song.mp3",
				Caption:   "Artist - Title",
			},
			wantOK: true,
		},
		{
			name: "callback query",
			update: Update{
				CallbackQuery: &CallbackQuery{
					ID:   "cb1",
					From: User{ID: 1},
					Message: &Message{
						MessageID: 77,
						Chat:      Chat{ID: 10},
					},
					Data: "play:5",
				},
			},
			want: bot.CallbackIntent{
				CallbackID: "cb1",
				ChatID:     10,
				MessageID:  77,
				UserID:     1,
				Data:       "play:5",
			},
			wantOK: true,
		},
		{
			name: "callback without a source message is dropped",
			update: Update{
				CallbackQuery: &CallbackQuery{ID: "cb1", From: User{ID: 1}, Data: "play:5"},
			},
			wantOK: false,
		},
		{
			name: "empty text is dropped",
			update: Update{
				Message: &Message{From: &User{ID: 1}, Chat: Chat{ID: 10}, Text: "   "},
			},
			wantOK: false,
		},
		{
			name:   "update without message is dropped",
			update: Update{UpdateID: 5},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UpdateToIntent(tt.update)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		text        string
		wantCommand string
		wantArgs    string
	}{
		{"/start", "start", ""},
		{"/search blue moon", "search", "blue moon"},
		{"/search@MyBot blue moon", "search", "blue moon"},
		{"/request@MyBot", "request", ""},
		{"/search   padded  ", "search", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			command, args := splitCommand(tt.text)
			assert.Equal(t, tt.wantCommand, command)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

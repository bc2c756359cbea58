package model

import "time"

// Track represents an audio track in the shared music library.
// FileID is the Telegram file identifier of the uploaded audio; the bot
// never inspects the media itself, it only re-sends the identifier.
type Track struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	FileID    string    `json:"-"` // opaque media reference, not exposed over the web API
	CreatedAt time.Time `json:"createdAt"`
}

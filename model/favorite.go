package model

// Favorite marks a track as a favorite of a Telegram user.
// The (UserID, TrackID) pair is unique in the store.
type Favorite struct {
	UserID  int64 `json:"userId"`
	TrackID int64 `json:"trackId"`
}

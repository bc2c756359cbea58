package model

import "time"

// Request status values. The bot only ever creates requests as pending;
// status changes are an admin concern.
const (
	RequestStatusPending = "pending"
	RequestStatusDone    = "done"
	RequestStatusDenied  = "denied"
)

// TrackRequest is a free-text request for a track that is not in the
// library yet. Username falls back to the user's first name when the
// Telegram account has no username.
type TrackRequest struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;index" json:"userId"`
	Username    string    `gorm:"column:username;size:255" json:"username"`
	RequestText string    `gorm:"column:request_text;type:text;not null" json:"requestText"`
	Status      string    `gorm:"column:status;size:50;default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName sets the table name.
func (TrackRequest) TableName() string {
	return "requests"
}

package repository

import (
	"fmt"

	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"

	"gorm.io/gorm"
)

// RequestRepository defines the interface for track-request operations.
type RequestRepository interface {
	CreateRequest(req *model.TrackRequest) error
	ListRequests(limit int) ([]*model.TrackRequest, error)
}

// gormRequestRepository implements RequestRepository on the GORM handle.
type gormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new instance of gormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) RequestRepository {
	return &gormRequestRepository{db: db}
}

// CreateRequest stores a new track request. Status defaults to pending.
func (r *gormRequestRepository) CreateRequest(req *model.TrackRequest) error {
	if req.Status == "" {
		req.Status = model.RequestStatusPending
	}
	if err := r.db.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create track request: %w", err)
	}
	logger.Info("Track request created",
		logger.Int64("requestId", req.ID),
		logger.Int64("userId", req.UserID),
		logger.String("text", req.RequestText))
	return nil
}

// ListRequests returns the most recent track requests, newest first.
// limit <= 0 means no limit.
func (r *gormRequestRepository) ListRequests(limit int) ([]*model.TrackRequest, error) {
	var requests []*model.TrackRequest
	tx := r.db.Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list track requests: %w", err)
	}
	return requests, nil
}

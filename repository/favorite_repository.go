package repository

import (
	"database/sql"
	"fmt"

	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"
)

// FavoriteRepository defines the interface for favorite data operations.
type FavoriteRepository interface {
	AddFavorite(userID, trackID int64) error
	RemoveFavorite(userID, trackID int64) error
	CountFavorites(userID int64) (int, error)
	ListFavoritesPage(userID int64, limit, offset int) ([]*model.Track, error)
}

// mysqlFavoriteRepository implements FavoriteRepository for MySQL.
type mysqlFavoriteRepository struct {
	db *sql.DB
}

// NewMySQLFavoriteRepository creates a new instance of mysqlFavoriteRepository.
func NewMySQLFavoriteRepository(db *sql.DB) FavoriteRepository {
	return &mysqlFavoriteRepository{db: db}
}

// AddFavorite marks a track as a favorite of the user. The store's unique
// constraint on (user_id, track_id) guarantees that of concurrent inserts
// for the same pair exactly one succeeds; the others get ErrDuplicate.
func (r *mysqlFavoriteRepository) AddFavorite(userID, trackID int64) error {
	query := `INSERT INTO favorites (user_id, track_id) VALUES (?, ?)`
	if _, err := r.db.Exec(query, userID, trackID); err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to execute AddFavorite: %w", err)
	}
	logger.Info("Favorite added", logger.Int64("userId", userID), logger.Int64("trackId", trackID))
	return nil
}

// RemoveFavorite removes a track from the user's favorites. Returns
// ErrNotFound when the pair was not stored.
func (r *mysqlFavoriteRepository) RemoveFavorite(userID, trackID int64) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND track_id = ?`
	res, err := r.db.Exec(query, userID, trackID)
	if err != nil {
		return fmt.Errorf("failed to execute RemoveFavorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for RemoveFavorite: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountFavorites returns the number of favorites of the user.
func (r *mysqlFavoriteRepository) CountFavorites(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM favorites WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites for user %d: %w", userID, err)
	}
	return count, nil
}

// ListFavoritesPage retrieves one page of the user's favorite tracks
// ordered by title ascending.
func (r *mysqlFavoriteRepository) ListFavoritesPage(userID int64, limit, offset int) ([]*model.Track, error) {
	query := `
		SELECT tracks.id, tracks.title, tracks.file_id, tracks.created_at
		FROM tracks
		JOIN favorites ON tracks.id = favorites.track_id
		WHERE favorites.user_id = ?
		ORDER BY tracks.title
		LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites page for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

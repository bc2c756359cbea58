package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"
)

// TrackRepository defines the interface for track data operations.
type TrackRepository interface {
	CreateTrack(track *model.Track) (int64, error)
	GetTrackByID(id int64) (*model.Track, error)
	GetTrackByFileID(fileID string) (*model.Track, error)
	CountTracks() (int, error)
	ListTracksPage(limit, offset int) ([]*model.Track, error)
	SearchTracksByTitle(query string) ([]*model.Track, error)
	GetAllTracks() ([]*model.Track, error)
}

// mysqlTrackRepository implements TrackRepository for MySQL.
type mysqlTrackRepository struct {
	db *sql.DB
}

// NewMySQLTrackRepository creates a new instance of mysqlTrackRepository.
func NewMySQLTrackRepository(db *sql.DB) TrackRepository {
	return &mysqlTrackRepository{db: db}
}

// CreateTrack adds a new track to the database. Returns ErrDuplicate when a
// track with the same file id already exists.
func (r *mysqlTrackRepository) CreateTrack(track *model.Track) (int64, error) {
	query := `INSERT INTO tracks (title, file_id) VALUES (?, ?)`
	res, err := r.db.Exec(query, track.Title, track.FileID)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("failed to execute CreateTrack: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for CreateTrack: %w", err)
	}
	logger.Info("Track created", logger.Int64("trackId", id), logger.String("title", track.Title))
	return id, nil
}

// GetTrackByID retrieves a track by its ID. Returns ErrNotFound when no such
// track exists (e.g. a stale play button).
func (r *mysqlTrackRepository) GetTrackByID(id int64) (*model.Track, error) {
	query := `SELECT id, title, file_id, created_at FROM tracks WHERE id = ?`
	row := r.db.QueryRow(query, id)

	track := &model.Track{}
	err := row.Scan(&track.ID, &track.Title, &track.FileID, &track.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan track by ID %d: %w", id, err)
	}
	return track, nil
}

// GetTrackByFileID retrieves a track by its opaque file id, used for
// duplicate detection on upload. Returns ErrNotFound when absent.
func (r *mysqlTrackRepository) GetTrackByFileID(fileID string) (*model.Track, error) {
	query := `SELECT id, title, file_id, created_at FROM tracks WHERE file_id = ?`
	row := r.db.QueryRow(query, fileID)

	track := &model.Track{}
	err := row.Scan(&track.ID, &track.Title, &track.FileID, &track.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan track by file id: %w", err)
	}
	return track, nil
}

// CountTracks returns the total number of tracks in the library.
func (r *mysqlTrackRepository) CountTracks() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM tracks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return count, nil
}

// ListTracksPage retrieves one page of tracks ordered by title ascending.
func (r *mysqlTrackRepository) ListTracksPage(limit, offset int) ([]*model.Track, error) {
	query := `SELECT id, title, file_id, created_at FROM tracks ORDER BY title LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks page: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

// SearchTracksByTitle retrieves every track whose title contains the query,
// case-insensitively.
func (r *mysqlTrackRepository) SearchTracksByTitle(query string) ([]*model.Track, error) {
	stmt := `SELECT id, title, file_id, created_at FROM tracks WHERE LOWER(title) LIKE ? ORDER BY title`
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := r.db.Query(stmt, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search tracks for %q: %w", query, err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

// GetAllTracks retrieves the whole library ordered by title, for the
// companion web page.
func (r *mysqlTrackRepository) GetAllTracks() ([]*model.Track, error) {
	query := `SELECT id, title, file_id, created_at FROM tracks ORDER BY title`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

func scanTracks(rows *sql.Rows) ([]*model.Track, error) {
	tracks := make([]*model.Track, 0)
	for rows.Next() {
		track := &model.Track{}
		if err := rows.Scan(&track.ID, &track.Title, &track.FileID, &track.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan track row: %w", err)
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during track rows iteration: %w", err)
	}

	return tracks, nil
}

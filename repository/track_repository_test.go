package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteomarino16/telegram-audio-bot/model"
)

func newTrackRepoMock(t *testing.T) (TrackRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMySQLTrackRepository(db), mock
}

func trackColumns() []string {
	return []string{"id", "title", "file_id", "created_at"}
}

func TestCreateTrack(t *testing.T) {
	repo, mock := newTrackRepoMock(t)

	mock.ExpectExec("INSERT INTO tracks").
		WithArgs("Artist - Song", "file-abc").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.CreateTrack(&model.Track{Title: "Artist - Song", FileID: "file-abc"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrackDuplicateFileID(t *testing.T) {
	repo, mock := newTrackRepoMock(t)

	mock.ExpectExec("INSERT INTO tracks").
		WithArgs("Artist - Song", "file-abc").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := repo.CreateTrack(&model.Track{Title: "Artist - Song", FileID: "file-abc"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrackByID(t *testing.T) {
	repo, mock := newTrackRepoMock(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, title, file_id, created_at FROM tracks WHERE id = ?").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(trackColumns()).AddRow(7, "Artist - Song", "file-abc", created))

	track, err := repo.GetTrackByID(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), track.ID)
	assert.Equal(t, "Artist - Song", track.Title)
	assert.Equal(t, "file-abc", track.FileID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrackByIDNotFound(t *testing.T) {
	repo, mock := newTrackRepoMock(t)

	mock.ExpectQuery("SELECT id, title, file_id, created_at FROM tracks WHERE id = ?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(trackColumns()))

	_, err := repo.GetTrackByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrackByFileIDNotFound(t *testing.T) {
	repo, mock := newTrackRepoMock(t)

	mock.ExpectQuery("SELECT id, title, file_id, created_at FROM tracks WHERE file_id = ?").
		WithArgs("file-unknown").
		WillReturnRows(sqlmock.NewRows(trackColumns()))

	_, err := repo.GetTrackByFileID("file-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTracks(t *testing.T) {
	repo, mock := newTrackRepoMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tracks`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountTracks()
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTracksPage(t *testing.T) {
	repo, mock := newTrackRepoMock(t)
	created := time.Now()

	mock.ExpectQuery("SELECT id, title, file_id, created_at FROM tracks ORDER BY title LIMIT \\? OFFSET \\?").
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows(trackColumns()).
			AddRow(1, "Alpha", "file-1", created).
			AddRow(2, "Beta", "file-2", created))

	tracks, err := repo.ListTracksPage(5, 10)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Alpha", tracks[0].Title)
	assert.Equal(t, "Beta", tracks[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTracksByTitleLowercasesPattern(t *testing.T) {
	repo, mock := newTrackRepoMock(t)
	created := time.Now()

	mock.ExpectQuery(`SELECT id, title, file_id, created_at FROM tracks WHERE LOWER\(title\) LIKE \? ORDER BY title`).
		WithArgs("%blue moon%").
		WillReturnRows(sqlmock.NewRows(trackColumns()).AddRow(1, "Blue Moon", "file-1", created))

	tracks, err := repo.SearchTracksByTitle("Blue Moon")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Blue Moon", tracks[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTracksByTitleNoHits(t *testing.T) {
	repo, mock := newTrackRepoMock(t)

	mock.ExpectQuery(`SELECT id, title, file_id, created_at FROM tracks WHERE LOWER\(title\) LIKE \? ORDER BY title`).
		WithArgs("%zzz%").
		WillReturnRows(sqlmock.NewRows(trackColumns()))

	tracks, err := repo.SearchTracksByTitle("zzz")
	require.NoError(t, err)
	assert.Empty(t, tracks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

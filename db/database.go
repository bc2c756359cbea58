package db

import (
	"database/sql"
	"fmt"

	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/logger"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// Connect establishes a connection to the database and returns the handle.
// The caller owns the handle lifecycle.
func Connect(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database.")
	return conn, nil
}

// InitSchema creates the tracks and favorites tables if they don't exist.
// The requests table is migrated separately through GORM (see gorm.go).
// Safe to run on every startup.
func InitSchema(conn *sql.DB) error {
	if err := createTracksTable(conn); err != nil {
		return err
	}
	if err := createFavoritesTable(conn); err != nil {
		return err
	}
	logger.Info("Database schema initialized successfully (or already exists).")
	return nil
}

func createTracksTable(conn *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS tracks (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		file_id VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT uq_file_id UNIQUE (file_id)
	);
	`
	if _, err := conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create tracks table: %w", err)
	}
	return nil
}

func createFavoritesTable(conn *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS favorites (
		user_id BIGINT NOT NULL,
		track_id INT NOT NULL,
		CONSTRAINT uq_user_track UNIQUE (user_id, track_id)
	);
	`
	if _, err := conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create favorites table: %w", err)
	}
	return nil
}

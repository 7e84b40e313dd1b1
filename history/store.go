// Package history persists the harness's load history: every embed page
// build is recorded so recent loads can be replayed from the index page.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

type LoadRecord struct {
	ID       int64
	VideoID  string
	Title    string
	Origin   string
	LoadedAt time.Time
}

// New opens (and migrates) the history database. dbPath defaults to the
// DB_PATH env var or ./data/ytembed.db.
func New(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = os.Getenv("DB_PATH")
	}
	if dbPath == "" {
		dbPath = "./data/ytembed.db"
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL for concurrent harness reads while loads are being recorded
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Infof("History database initialized at %s", dbPath)
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS load_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			video_id TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			origin TEXT NOT NULL DEFAULT '',
			loaded_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_load_history_loaded_at ON load_history(loaded_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_load_history_video_id ON load_history(video_id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

// Record stores one load. Title may be empty when no metadata lookup ran.
func (s *Store) Record(videoID, title, origin string) error {
	_, err := s.db.Exec(
		`INSERT INTO load_history (video_id, title, origin) VALUES (?, ?, ?)`,
		videoID, title, origin,
	)
	if err != nil {
		return fmt.Errorf("failed to record load: %w", err)
	}
	return nil
}

// Recent returns the most recent loads, newest first.
func (s *Store) Recent(limit int) ([]LoadRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, video_id, title, origin, loaded_at
		 FROM load_history ORDER BY loaded_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []LoadRecord
	for rows.Next() {
		var r LoadRecord
		if err := rows.Scan(&r.ID, &r.VideoID, &r.Title, &r.Origin, &r.LoadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountByVideo returns how many times a video has been loaded.
func (s *Store) CountByVideo(videoID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM load_history WHERE video_id = ?`, videoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count loads: %w", err)
	}
	return count, nil
}

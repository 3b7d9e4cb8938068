// Package db opens the read-only SQLite snapshot through gorm.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrSnapshotMissing is returned when the database file does not exist.
var ErrSnapshotMissing = errors.New("snapshot database not found")

// Config holds the snapshot location.
type Config struct {
	Path        string
	BusyTimeout int // milliseconds
}

// Opener opens a gorm connection for a DSN. Tests replace it.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN builds a read-only mattn/go-sqlite3 URI for the snapshot file.
func BuildDSN(cfg Config) string {
	q := url.Values{}
	q.Set("mode", "ro")
	if cfg.BusyTimeout > 0 {
		q.Set("_busy_timeout", fmt.Sprint(cfg.BusyTimeout))
	}
	return "file:" + cfg.Path + "?" + q.Encode()
}

// Open checks that the snapshot exists and opens it read-only.
func Open(cfg Config) (*gorm.DB, error) {
	return OpenWith(cfg, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
	})
}

// OpenWith is Open with a custom opener.
func OpenWith(cfg Config, open Opener) (*gorm.DB, error) {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotMissing, cfg.Path)
		}
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSnapshotMissing, cfg.Path)
	}

	db, err := open(BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	slog.Info("snapshot database opened", "path", cfg.Path, "size_bytes", info.Size())
	return db, nil
}

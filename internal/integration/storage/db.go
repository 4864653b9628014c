// Package storage persists client state on the device: the encrypted token
// vault and the offline cache backing event browsing and the own profile.
package storage

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meetcute/client/internal/integration/storage/model"
)

// DB wraps the on-device SQLite cache database.
type DB struct {
	db *gorm.DB
}

// Open opens (and migrates) the cache database at the given path. The
// sqlite driver is pure Go, so the same binary runs everywhere the app does.
func Open(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.CachedEventModel{},
		&model.CachedProfileModel{},
	); err != nil {
		return nil, fmt.Errorf("migrate cache database: %w", err)
	}

	return &DB{db: db}, nil
}

// DB returns the underlying gorm handle.
func (d *DB) DB() *gorm.DB {
	return d.db
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

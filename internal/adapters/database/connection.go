// Package database provides the gorm connection and the database-backed favorites store
package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherdash.app/internal/config"
	"weatherdash.app/pkg/errors"
)

// Open connects to sqlite or postgres depending on the configured driver
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to database", err)
	}
	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&FavoriteModel{}); err != nil {
		return errors.NewDatabaseError("failed to run migrations", err)
	}
	return nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

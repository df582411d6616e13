// Package store opens the relational store and applies the schema.
//
// Postgres is the production driver. The sqlite driver (pure Go, no CGO, so
// it builds cleanly in Alpine images) backs local development and the test
// suite.
package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jcmexdev/ecommerce-api/internal/config"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dial = sqlite.Open(cfg.DSN)
	case "postgres", "":
		dial = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Dialect duplicate-key errors become gorm.ErrDuplicatedKey, which
		// the services classify as Conflict.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", cfg.Driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema. Idempotent; also used by tests against an
// in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Address{},
		&entity.Product{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderProduct{},
		&entity.OrderEvent{},
	)
	if err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

package database

import (
	"fmt"
	"strings"
	"time"

	"hospogo-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a database connection and creates the schema from GORM
// models. Postgres is the production target; a "sqlite://" DSN opens an
// embedded database for local development.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	}

	var db *gorm.DB
	var err error
	if path, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
	} else {
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
			sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
		}

		// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
		_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error
	}

	// AutoMigrate all models (no cycles)
	if opts.AutoMigrate {
		all := []interface{}{
			&models.Hub{},
			&models.Professional{},
			&models.ShiftTemplate{},
			&models.Shift{},
			&models.ShiftAssignment{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

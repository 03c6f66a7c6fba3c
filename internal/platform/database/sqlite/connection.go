package sqlite

import (
	"context"
	"fmt"
	"time"

	"blog/internal/platform/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config interface {
	DSN() string
}

type DB struct {
	*gorm.DB
	config Config
}

func New(cfg Config, log logger.Logger) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

const pingTimeout = 5 * time.Second

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

// Migrate creates or alters the tables of the given models.
func (db *DB) Migrate(ctx context.Context, models ...any) error {
	if err := db.DB.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

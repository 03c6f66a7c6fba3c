package database

import (
	"context"
	"errors"
	"sync"

	"blog/internal/config"
	"blog/internal/platform/database/sqlite"
	"blog/internal/platform/logger"

	"gorm.io/gorm"
)

var ErrNotStarted = errors.New("database is not started")

// SQLiteLifecycle opens the SQLite file on start and migrates the given gorm models.
type SQLiteLifecycle struct {
	cfg    *config.SQLiteConfig
	logger logger.Logger
	models []any
	db     *sqlite.DB
	mu     sync.Mutex
}

func NewSQLiteLifecycle(cfg *config.SQLiteConfig, log logger.Logger, models ...any) *SQLiteLifecycle {
	return &SQLiteLifecycle{
		cfg:    cfg,
		logger: log.With(logger.String("database", "sqlite")),
		models: models,
	}
}

func (d *SQLiteLifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return nil
	}

	d.logger.Info("Opening SQLite database", logger.String("path", d.cfg.Path))

	db, err := sqlite.New(d.cfg, d.logger)
	if err != nil {
		d.logger.Error("Failed to open SQLite database", logger.Error(err))
		return err
	}

	if err := db.Migrate(ctx, d.models...); err != nil {
		d.logger.Error("Failed to migrate SQLite schema", logger.Error(err))
		if closeErr := db.Close(); closeErr != nil {
			d.logger.Error("Failed to close database after migration failure", logger.Error(closeErr))
		}
		return err
	}

	d.db = db
	return nil
}

func (d *SQLiteLifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	err := closeWithin(ctx, d.db.Close)
	d.db = nil
	if err != nil {
		d.logger.Error("Error closing SQLite database", logger.Error(err))
		return err
	}

	d.logger.Info("SQLite database closed")
	return nil
}

// Session is nil before Start and after Stop.
func (d *SQLiteLifecycle) Session() *gorm.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	return d.db.DB
}

func (d *SQLiteLifecycle) Ping(ctx context.Context) error {
	d.mu.Lock()
	db := d.db
	d.mu.Unlock()

	if db == nil {
		return ErrNotStarted
	}
	return db.Ping(ctx)
}

// closeWithin gives up waiting for closeFn once ctx is done.
func closeWithin(ctx context.Context, closeFn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- closeFn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

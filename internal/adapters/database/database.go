package database

import (
	"context"
	"sync"

	"blog/internal/adapters/database/migrations"
	"blog/internal/config"
	"blog/internal/platform/database/postgres"
	"blog/internal/platform/logger"
)

// Lifecycle owns the PostgreSQL connection pool between fx start and stop.
type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
	db     *postgres.DB
	mu     sync.Mutex
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log.With(logger.String("database", "postgres")),
	}
}

func (d *Lifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.logger.Warn("Database connection already exists, closing existing connection")
		if err := d.db.Close(); err != nil {
			d.logger.Error("Failed to close existing database connection", logger.Error(err))
		}
		d.db = nil
	}

	d.logger.Info("Starting database connection")

	db, err := postgres.New(&d.cfg.Postgres)
	if err != nil {
		d.logger.Error("Failed to create PostgreSQL connection", logger.Error(err))
		return err
	}

	if err := db.Ping(ctx); err != nil {
		d.logger.Error("Failed to ping PostgreSQL", logger.Error(err))
		d.closeQuietly(db)
		return err
	}

	if d.cfg.Postgres.AutoMigrate {
		applied, err := db.Migrate(ctx, migrations.FS)
		if err != nil {
			d.logger.Error("Failed to apply migrations", logger.Error(err))
			d.closeQuietly(db)
			return err
		}
		d.logger.Info("Schema is up to date", logger.Int("applied_migrations", len(applied)))
	} else if pending, err := db.HasPending(ctx, migrations.FS); err != nil {
		d.logger.Warn("Could not determine schema version", logger.Error(err))
	} else if pending {
		d.logger.Warn("Schema has pending migrations and auto-migrate is disabled")
	}

	d.db = db
	d.logger.Info("Successfully connected to PostgreSQL database")
	return nil
}

func (d *Lifecycle) closeQuietly(db *postgres.DB) {
	if err := db.Close(); err != nil {
		d.logger.Error("Failed to close database after startup failure", logger.Error(err))
	}
}

func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	d.logger.Info("Closing database connection")
	err := closeWithin(ctx, d.db.Close)
	d.db = nil
	if err != nil {
		d.logger.Error("Error closing database connection", logger.Error(err))
		return err
	}

	d.logger.Info("Database connection closed successfully")
	return nil
}

// Connection is nil before Start and after Stop.
func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}

func (d *Lifecycle) Ping(ctx context.Context) error {
	db := d.Connection()
	if db == nil {
		return ErrNotStarted
	}
	return db.Ping(ctx)
}

package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// StorageConfig selects the backing store for article persistence.
type StorageConfig struct {
	BaseConfig
	Driver string       `envconfig:"STORAGE_DRIVER" default:"postgres" validate:"oneof=postgres sqlite memory"`
	SQLite SQLiteConfig `envconfig:"SQLITE"`
}

type SQLiteConfig struct {
	Path        string        `envconfig:"DB_PATH" default:"blog.db" validate:"required"`
	BusyTimeout time.Duration `envconfig:"BUSY_TIMEOUT" default:"5s"`
}

// DSN is a go-sqlite3 URI filename; busy timeout is in milliseconds.
func (c *SQLiteConfig) DSN() string {
	path := (&url.URL{Path: c.Path}).EscapedPath()
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", path, c.BusyTimeout.Milliseconds())
}

func LoadStorage() (*StorageConfig, error) {
	var cfg StorageConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

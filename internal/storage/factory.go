package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lorekeep/atlas/internal/config"
	"github.com/lorekeep/atlas/internal/database"
	"github.com/lorekeep/atlas/internal/storage/gormstore"
	"github.com/lorekeep/atlas/internal/storage/memory"
)

// NewService creates a storage service based on configuration.
func NewService(cfg config.StorageConfig, log zerolog.Logger) (Service, error) {
	switch cfg.Type {
	case "memory":
		return memory.New(), nil

	case "sqlite":
		db, err := database.GetSqliteDBStandalone(cfg.SqlitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		backend := gormstore.New(db, log)
		if err := backend.Init(); err != nil {
			return nil, err
		}
		return backend, nil

	case "postgres":
		mgr := database.NewManager(log)
		if err := mgr.Connect(); err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		backend := gormstore.New(mgr.DB, log)
		if err := backend.Init(); err != nil {
			return nil, err
		}
		return backend, nil

	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// Package gormstore persists map documents through gorm, one row per map
// key with the nested document held in a JSON column. Works against both
// Postgres and the SQLite fallback.
package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lorekeep/atlas/internal/document"
)

// MapDocument is the gorm model for a stored map document.
type MapDocument struct {
	gorm.Model
	Key  string         `gorm:"uniqueIndex;size:255"`
	Data datatypes.JSON `gorm:"not null"`
}

// Backend implements the storage service on a gorm database.
type Backend struct {
	db  *gorm.DB
	log zerolog.Logger
}

// New creates a backend on the given database handle.
func New(db *gorm.DB, log zerolog.Logger) *Backend {
	return &Backend{db: db, log: log}
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(&MapDocument{}); err != nil {
		return fmt.Errorf("migrating map document schema: %w", err)
	}
	return nil
}

// Load returns the stored document for mapKey; found is false when no row
// exists for that key.
func (b *Backend) Load(ctx context.Context, mapKey string) (document.Document, bool, error) {
	var rec MapDocument
	err := b.db.WithContext(ctx).Where("key = ?", mapKey).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return document.Document{}, false, nil
	}
	if err != nil {
		return document.Document{}, false, fmt.Errorf("loading map document %q: %w", mapKey, err)
	}

	doc, err := document.Parse(rec.Data)
	if err != nil {
		return document.Document{}, false, fmt.Errorf("decoding map document %q: %w", mapKey, err)
	}
	return doc, true, nil
}

// Save upserts the document for mapKey, replacing any previous content.
func (b *Backend) Save(ctx context.Context, mapKey string, doc document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding map document %q: %w", mapKey, err)
	}

	rec := MapDocument{Key: mapKey, Data: datatypes.JSON(data)}
	err = b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("saving map document %q: %w", mapKey, err)
	}

	b.log.Debug().Str("mapKey", mapKey).Int("bytes", len(data)).Msg("Map document saved")
	return nil
}

// Close closes the underlying connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Package storage defines the map-document storage service consumed by the
// editor's persistence adapter, and a factory for the concrete backends.
package storage

import (
	"context"

	"github.com/lorekeep/atlas/internal/document"
)

// Service stores one nested map document per map key. Save replaces the
// stored document wholesale; there is no versioning and the last write
// wins. Load reports a missing document through the found flag — a fresh
// map simply has no document yet, which is not an error.
type Service interface {
	Load(ctx context.Context, mapKey string) (doc document.Document, found bool, err error)
	Save(ctx context.Context, mapKey string, doc document.Document) error
	Close() error
}

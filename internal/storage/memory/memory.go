// Package memory stores map documents in process memory. Used by tests and
// as a scratch backend; contents are lost on close.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lorekeep/atlas/internal/document"
)

// Backend keeps each document as its serialized form, keyed by map key.
// Storing bytes keeps the save-replaces-wholesale semantics honest: a load
// always decodes what the last save wrote, nothing is shared by reference.
type Backend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// New creates an empty memory backend.
func New() *Backend {
	return &Backend{docs: make(map[string][]byte)}
}

// Load returns the stored document for mapKey; found is false when no
// document has been saved under that key.
func (b *Backend) Load(_ context.Context, mapKey string) (document.Document, bool, error) {
	b.mu.RLock()
	data, ok := b.docs[mapKey]
	b.mu.RUnlock()

	if !ok {
		return document.Document{}, false, nil
	}
	doc, err := document.Parse(data)
	if err != nil {
		return document.Document{}, false, fmt.Errorf("decoding stored document %q: %w", mapKey, err)
	}
	return doc, true, nil
}

// Save replaces the stored document for mapKey.
func (b *Backend) Save(_ context.Context, mapKey string, doc document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document %q: %w", mapKey, err)
	}

	b.mu.Lock()
	b.docs[mapKey] = data
	b.mu.Unlock()
	return nil
}

// Close discards all stored documents.
func (b *Backend) Close() error {
	b.mu.Lock()
	b.docs = make(map[string][]byte)
	b.mu.Unlock()
	return nil
}

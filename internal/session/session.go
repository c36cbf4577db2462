// Package session is the persistence adapter around the editor state
// machine: it owns the State for one map, applies actions and interaction
// events, and saves the denormalized document through the storage service.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lorekeep/atlas/internal/document"
	"github.com/lorekeep/atlas/internal/editor"
	"github.com/lorekeep/atlas/internal/storage"
	"github.com/lorekeep/atlas/internal/telemetry"
	"github.com/lorekeep/atlas/pkg/core"
	"github.com/lorekeep/atlas/pkg/geo"
)

// ErrSaveInFlight is returned when a save is requested while an earlier one
// is still outstanding. Local edits are never blocked by a running save;
// they are simply picked up by the next one.
var ErrSaveInFlight = errors.New("a save is already in flight")

// Dependencies holds everything a session needs.
type Dependencies struct {
	MapKey   string
	Document document.Document
	Store    storage.Service
	Logger   zerolog.Logger
	// Telemetry is optional; nil disables edit telemetry.
	Telemetry *telemetry.Recorder
}

// Session owns the editor state for a single map. All transitions run to
// completion synchronously; the only asynchronous boundary is Save.
type Session struct {
	mapKey    string
	store     storage.Service
	log       zerolog.Logger
	telemetry *telemetry.Recorder
	metrics   *metrics

	mu     sync.Mutex
	state  editor.State
	saving atomic.Bool
}

// New normalizes the document and starts an editing session on it.
func New(deps Dependencies) (*Session, error) {
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	return &Session{
		mapKey:    deps.MapKey,
		store:     deps.Store,
		log:       deps.Logger,
		telemetry: deps.Telemetry,
		metrics:   m,
		state:     editor.NewState(document.Normalize(deps.Document)),
	}, nil
}

// State returns the current editor state for the rendering surface.
func (s *Session) State() editor.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LabelAnchors returns the label placement for every area in the current
// state, keyed by area id: the manual labelPosition override when set,
// otherwise the polygon centroid, with a vertex-mean fallback while the
// ring is still being drawn.
func (s *Session) LabelAnchors() map[string]core.Position {
	s.mu.Lock()
	areas := s.state.Areas
	s.mu.Unlock()

	anchors := make(map[string]core.Position, len(areas))
	for _, a := range areas {
		anchors[a.ID] = geo.LabelAnchor(a)
	}
	return anchors
}

// Saving reports whether a save is currently in flight.
func (s *Session) Saving() bool {
	return s.saving.Load()
}

// Dispatch applies one action to the editor state.
func (s *Session) Dispatch(a editor.Action) {
	name := actionName(a)

	s.mu.Lock()
	s.state = editor.Reduce(s.state, a)
	s.mu.Unlock()

	s.metrics.actions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("action", name)))
	if s.telemetry != nil {
		s.telemetry.RecordAction(s.mapKey, name)
	}
	s.log.Debug().Str("action", name).Msg("Action applied")
}

// PlaneClick forwards a plane click from the rendering surface.
func (s *Session) PlaneClick(pos core.Position) {
	s.applyEvent("planeClick", func(st editor.State) editor.State {
		return editor.PlaneClick(st, pos)
	})
}

// VertexDragEnd forwards the end of a vertex drag.
func (s *Session) VertexDragEnd(kind core.EntityKind, id string, index int, pos core.Position) {
	s.applyEvent("vertexDragEnd", func(st editor.State) editor.State {
		return editor.VertexDragEnd(st, kind, id, index, pos)
	})
}

// EntityDragEnd forwards the end of a whole-entity drag (marker, or the
// overlay center handle).
func (s *Session) EntityDragEnd(kind core.EntityKind, id string, pos core.Position) {
	s.applyEvent("entityDragEnd", func(st editor.State) editor.State {
		return editor.EntityDragEnd(st, kind, id, pos)
	})
}

// OverlayCornerDragEnd forwards the end of an overlay corner drag.
func (s *Session) OverlayCornerDragEnd(id string, handle editor.Handle, pos core.Position) {
	s.applyEvent("overlayCornerDragEnd", func(st editor.State) editor.State {
		return editor.OverlayCornerDragEnd(st, id, handle, pos)
	})
}

// LabelDragEnd forwards the end of an area label drag.
func (s *Session) LabelDragEnd(id string, pos core.Position) {
	s.applyEvent("labelDragEnd", func(st editor.State) editor.State {
		return editor.LabelDragEnd(st, id, pos)
	})
}

func (s *Session) applyEvent(name string, fn func(editor.State) editor.State) {
	s.mu.Lock()
	s.state = fn(s.state)
	s.mu.Unlock()

	s.metrics.actions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("action", name)))
	if s.telemetry != nil {
		s.telemetry.RecordAction(s.mapKey, name)
	}
}

// Save denormalizes a snapshot of the current state and replaces the stored
// document wholesale. At most one save runs at a time; edits made while a
// save is in flight are not part of that save and land in the next one. A
// failed save leaves the editor state untouched and re-saveable.
func (s *Session) Save(ctx context.Context) error {
	if !s.saving.CompareAndSwap(false, true) {
		return ErrSaveInFlight
	}
	defer s.saving.Store(false)

	s.mu.Lock()
	flat := editor.Flatten(s.state)
	s.mu.Unlock()

	doc := document.Denormalize(flat)

	start := time.Now()
	err := s.store.Save(ctx, s.mapKey, doc)
	elapsed := time.Since(start)

	s.metrics.saves.Add(ctx, 1)
	if s.telemetry != nil {
		s.telemetry.RecordSave(s.mapKey, elapsed, err == nil)
	}

	if err != nil {
		s.metrics.saveFailures.Add(ctx, 1)
		s.log.Error().Err(err).Str("mapKey", s.mapKey).Msg("Save failed")
		return fmt.Errorf("saving map %q: %w", s.mapKey, err)
	}

	s.log.Info().Str("mapKey", s.mapKey).Dur("elapsed", elapsed).Msg("Map saved")
	return nil
}

// actionName names an action for logs and metrics, e.g. "AddMarker".
func actionName(a editor.Action) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", a), "editor.")
}

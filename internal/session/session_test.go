package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/atlas/internal/document"
	"github.com/lorekeep/atlas/internal/editor"
	"github.com/lorekeep/atlas/internal/storage"
	"github.com/lorekeep/atlas/internal/storage/memory"
	"github.com/lorekeep/atlas/pkg/core"
)

func testSession(t *testing.T, store storage.Service, doc document.Document) *Session {
	t.Helper()
	s, err := New(Dependencies{
		MapKey:   "phandalin",
		Document: doc,
		Store:    store,
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)
	return s
}

func TestNew_NormalizesDocument(t *testing.T) {
	doc := document.Document{
		Annotations: map[string]document.MarkerGroup{
			"settlements": {Name: "Settlements", Items: []core.Marker{{Label: "Harbor Town"}}},
		},
	}
	s := testSession(t, memory.New(), doc)

	st := s.State()
	require.Len(t, st.Markers, 1)
	assert.Equal(t, "settlements", st.Markers[0].Category)
	assert.NotEmpty(t, st.Markers[0].ID)
	assert.Equal(t, editor.ModeSelect, st.Mode)
}

func TestDispatch_AppliesAction(t *testing.T) {
	s := testSession(t, memory.New(), document.Document{})

	m := editor.NewMarkerAt(core.Position{10, 20})
	s.Dispatch(editor.AddMarker{Marker: m})

	st := s.State()
	require.Len(t, st.Markers, 1)
	assert.True(t, st.Selection.Is(core.KindMarker, m.ID))
}

func TestEvents_FlowThroughToState(t *testing.T) {
	s := testSession(t, memory.New(), document.Document{})

	s.Dispatch(editor.AddPath{Path: editor.NewPath()})
	s.PlaneClick(core.Position{1.11111111, 2})
	s.PlaneClick(core.Position{3, 4})

	st := s.State()
	require.Len(t, st.Paths, 1)
	require.Len(t, st.Paths[0].Points, 2)
	assert.Equal(t, core.Position{1.1111, 2}, st.Paths[0].Points[0].Coordinates)
}

func TestSave_PersistsDenormalizedDocument(t *testing.T) {
	store := memory.New()
	s := testSession(t, store, document.Document{})

	s.Dispatch(editor.AddMarker{Marker: editor.NewMarkerAt(core.Position{10, 20})})
	area := editor.NewArea()
	s.Dispatch(editor.AddArea{Area: area})
	s.PlaneClick(core.Position{0, 0})
	s.PlaneClick(core.Position{10, 0})
	s.PlaneClick(core.Position{10, 10})

	require.NoError(t, s.Save(context.Background()))

	doc, found, err := store.Load(context.Background(), "phandalin")
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, doc.Annotations["default"].Items, 1)
	assert.Equal(t, "New Marker", doc.Annotations["default"].Items[0].Label)

	regions := doc.Areas.Groups[document.RegionsKey]
	require.Len(t, regions.Items, 1)
	assert.Len(t, regions.Items[0].Points, 3)
	assert.Empty(t, regions.Items[0].ID)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (document.Document, bool, error) {
	return document.Document{}, false, nil
}

func (failingStore) Save(context.Context, string, document.Document) error {
	return errors.New("disk on fire")
}

func (failingStore) Close() error { return nil }

func TestSave_FailureKeepsState(t *testing.T) {
	s := testSession(t, failingStore{}, document.Document{})
	s.Dispatch(editor.AddMarker{Marker: editor.NewMarkerAt(core.Position{1, 2})})

	err := s.Save(context.Background())
	require.Error(t, err)

	st := s.State()
	assert.Len(t, st.Markers, 1, "failed save must not touch editor state")
	assert.False(t, s.Saving())

	// A failed save leaves the session re-saveable.
	err = s.Save(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSaveInFlight)
}

type blockingStore struct {
	release chan struct{}
	saves   int
	mu      sync.Mutex
}

func (b *blockingStore) Load(context.Context, string) (document.Document, bool, error) {
	return document.Document{}, false, nil
}

func (b *blockingStore) Save(context.Context, string, document.Document) error {
	b.mu.Lock()
	b.saves++
	b.mu.Unlock()
	<-b.release
	return nil
}

func (b *blockingStore) Close() error { return nil }

func TestSave_RejectsSecondWhileInFlight(t *testing.T) {
	store := &blockingStore{release: make(chan struct{})}
	s := testSession(t, store, document.Document{})

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()

	// Wait for the first save to reach the store.
	require.Eventually(t, s.Saving, time.Second, time.Millisecond)

	err := s.Save(context.Background())
	assert.ErrorIs(t, err, ErrSaveInFlight)

	// Edits are never blocked by an in-flight save.
	s.Dispatch(editor.AddMarker{Marker: editor.NewMarkerAt(core.Position{5, 5})})
	assert.Len(t, s.State().Markers, 1)

	close(store.release)
	require.NoError(t, <-done)
	assert.False(t, s.Saving())

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 1, store.saves)
}

func TestLabelAnchors(t *testing.T) {
	s := testSession(t, memory.New(), document.Document{})

	area := editor.NewArea()
	s.Dispatch(editor.AddArea{Area: area})
	s.PlaneClick(core.Position{0, 0})
	s.PlaneClick(core.Position{10, 0})
	s.PlaneClick(core.Position{10, 10})
	s.PlaneClick(core.Position{0, 10})

	anchors := s.LabelAnchors()
	require.Len(t, anchors, 1)
	assert.InDelta(t, 5, anchors[area.ID][0], 1e-9)
	assert.InDelta(t, 5, anchors[area.ID][1], 1e-9)

	// A label drag overrides the centroid.
	s.LabelDragEnd(area.ID, core.Position{2, 3})
	assert.Equal(t, core.Position{2, 3}, s.LabelAnchors()[area.ID])
}

func TestActionName(t *testing.T) {
	assert.Equal(t, "AddMarker", actionName(editor.AddMarker{}))
	assert.Equal(t, "DeleteAreaVertex", actionName(editor.DeleteAreaVertex{}))
}

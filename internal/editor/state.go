// Package editor implements the annotation editor state machine: flat
// entity collections, selection, interaction mode and active tool, with a
// closed set of actions applied by a pure reducer. The rendering surface
// reads State after each transition and feeds interaction events back in.
package editor

import (
	"github.com/lorekeep/atlas/internal/document"
	"github.com/lorekeep/atlas/pkg/core"
)

// Mode is the current interaction mode.
type Mode string

const (
	// ModeSelect is the default mode: clicks select or create.
	ModeSelect Mode = "select"
	// ModeDraw appends vertices to the selected path or area on each
	// plane click. Left only by an explicit SetMode.
	ModeDraw Mode = "draw"
)

// Tool is the active tool filter controlling which layer reacts to clicks.
type Tool string

const (
	ToolMarkers  Tool = "markers"
	ToolPaths    Tool = "paths"
	ToolAreas    Tool = "areas"
	ToolOverlays Tool = "overlays"
)

// Visibility holds the per-collection layer toggles.
type Visibility struct {
	Markers  bool
	Paths    bool
	Areas    bool
	Overlays bool
}

// State is the full editor state. Values are treated as immutable: every
// transition returns a new State, copying only the collections it touches.
type State struct {
	Markers  []core.Marker
	Paths    []core.Path
	Areas    []core.Area
	Overlays []core.Overlay

	Selection  *core.Selection
	Mode       Mode
	ActiveTool Tool
	Visibility Visibility
}

// NewState builds the initial editor state from a normalized document.
func NewState(flat document.Flat) State {
	return State{
		Markers:    flat.Markers,
		Paths:      flat.Paths,
		Areas:      flat.Areas,
		Overlays:   flat.Overlays,
		Selection:  nil,
		Mode:       ModeSelect,
		ActiveTool: ToolMarkers,
		Visibility: Visibility{Markers: true, Paths: true, Areas: true, Overlays: true},
	}
}

// Flatten extracts the four collections for denormalization on save.
func Flatten(s State) document.Flat {
	return document.Flat{
		Markers:  s.Markers,
		Paths:    s.Paths,
		Areas:    s.Areas,
		Overlays: s.Overlays,
	}
}

// MarkerByID returns the marker with the given id, if present.
func (s State) MarkerByID(id string) (core.Marker, bool) {
	for _, m := range s.Markers {
		if m.ID == id {
			return m, true
		}
	}
	return core.Marker{}, false
}

// PathByID returns the path with the given id, if present.
func (s State) PathByID(id string) (core.Path, bool) {
	for _, p := range s.Paths {
		if p.ID == id {
			return p, true
		}
	}
	return core.Path{}, false
}

// AreaByID returns the area with the given id, if present.
func (s State) AreaByID(id string) (core.Area, bool) {
	for _, a := range s.Areas {
		if a.ID == id {
			return a, true
		}
	}
	return core.Area{}, false
}

// OverlayByID returns the overlay with the given id, if present.
func (s State) OverlayByID(id string) (core.Overlay, bool) {
	for _, o := range s.Overlays {
		if o.ID == id {
			return o, true
		}
	}
	return core.Overlay{}, false
}

package editor

import (
	"github.com/google/uuid"

	"github.com/lorekeep/atlas/pkg/core"
)

// New-entity defaults. Every constructor assigns a fresh session-local id;
// ids are unique within a session and never persisted.

// NewMarkerAt builds the default marker for a click-to-place gesture.
func NewMarkerAt(pos core.Position) core.Marker {
	m := core.Marker{
		ID:       uuid.NewString(),
		Category: "default",
		Label:    "New Marker",
		Type:     "place",
	}
	m.SetPosition(pos)
	return m
}

// NewPath builds an empty path ready for draw mode.
func NewPath() core.Path {
	return core.Path{
		ID:        uuid.NewString(),
		Name:      "New Path",
		LineColor: "#d97706",
		Opacity:   1,
		Points:    core.VertexList{},
	}
}

// NewArea builds an empty area ready for draw mode.
func NewArea() core.Area {
	return core.Area{
		ID:            uuid.NewString(),
		Name:          "New Region",
		InteriorColor: "#ff0000",
		LineColor:     "transparent",
		Points:        core.VertexList{},
	}
}

// NewOverlay builds an overlay with unit-size bounds at the origin; the
// operator drags the corners out from there.
func NewOverlay(image string) core.Overlay {
	return core.Overlay{
		ID:     uuid.NewString(),
		Name:   "New Overlay",
		Image:  image,
		Bounds: core.Bounds{{0, 0}, {1, 1}},
	}
}

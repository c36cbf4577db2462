package editor

import "github.com/lorekeep/atlas/pkg/core"

// Interaction events received from the rendering surface. Each translates a
// raw gesture into one state transition; every coordinate written here is
// rounded to 4 decimal places first. The rounding happens at this boundary,
// not in the reducer, so programmatic edits keep whatever precision they
// were given.

// PlaneClick handles a click on the plane itself.
//
// In draw mode with a path or area selected the click appends a vertex and
// drawing continues; draw mode ends only via an explicit SetMode. Outside
// draw mode, a click with the marker tool active and nothing selected
// places a new default marker. Any other click on empty space deselects.
func PlaneClick(s State, pos core.Position) State {
	p := pos.Round()

	if s.Mode == ModeDraw && s.Selection != nil {
		switch s.Selection.Kind {
		case core.KindPath:
			return Reduce(s, AppendPathVertex{ID: s.Selection.ID, Coordinates: p})
		case core.KindArea:
			return Reduce(s, AppendAreaVertex{ID: s.Selection.ID, Coordinates: p})
		}
		return s
	}

	if s.ActiveTool == ToolMarkers && s.Selection == nil {
		return Reduce(s, AddMarker{Marker: NewMarkerAt(p)})
	}

	return Reduce(s, SelectItem{Selection: nil})
}

// VertexDragEnd commits a vertex drag on a path or area.
func VertexDragEnd(s State, kind core.EntityKind, id string, index int, pos core.Position) State {
	p := pos.Round()
	switch kind {
	case core.KindPath:
		return Reduce(s, UpdatePathVertex{ID: id, Index: index, Patch: VertexPatch{Coordinates: &p}})
	case core.KindArea:
		return Reduce(s, UpdateAreaVertex{ID: id, Index: index, Patch: VertexPatch{Coordinates: &p}})
	}
	return s
}

// EntityDragEnd commits a whole-entity drag: a marker moves to the dropped
// position; an overlay translates by the drag of its center handle, both
// corners shifted by the same delta.
func EntityDragEnd(s State, kind core.EntityKind, id string, pos core.Position) State {
	switch kind {
	case core.KindMarker:
		p := pos.Round()
		return Reduce(s, UpdateMarker{ID: id, Patch: MarkerPatch{Position: &p}})
	case core.KindOverlay:
		o, ok := s.OverlayByID(id)
		if !ok {
			return s
		}
		delta := pos.Sub(o.Bounds.Center()).Round()
		bounds := moveBounds(o.Bounds, delta)
		return Reduce(s, UpdateOverlay{ID: id, Patch: OverlayPatch{Bounds: &bounds}})
	}
	return s
}

// OverlayCornerDragEnd commits a corner-handle drag, resizing the overlay.
func OverlayCornerDragEnd(s State, id string, handle Handle, pos core.Position) State {
	o, ok := s.OverlayByID(id)
	if !ok {
		return s
	}
	bounds := resizeBounds(o.Bounds, handle, pos.Round())
	return Reduce(s, UpdateOverlay{ID: id, Patch: OverlayPatch{Bounds: &bounds}})
}

// LabelDragEnd commits a drag of an area's label handle, recording a manual
// label position override.
func LabelDragEnd(s State, id string, pos core.Position) State {
	p := pos.Round()
	return Reduce(s, UpdateArea{ID: id, Patch: AreaPatch{LabelPosition: &p}})
}

package editor

import "github.com/lorekeep/atlas/pkg/core"

// Reduce applies a single action and returns the next state. It is pure:
// the input state is never mutated, and only the collections an action
// touches are copied. Actions referencing unknown ids or out-of-range
// vertex indexes are no-ops; a long-lived editing session must shrug off
// stale references instead of failing.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SelectItem:
		s.Selection = a.Selection
		s.Mode = ModeSelect
		return s

	case SetTool:
		s.ActiveTool = a.Tool
		s.Selection = nil
		s.Mode = ModeSelect
		return s

	case SetMode:
		s.Mode = a.Mode
		return s

	case ToggleVisibility:
		switch a.Kind {
		case core.KindMarker:
			s.Visibility.Markers = !s.Visibility.Markers
		case core.KindPath:
			s.Visibility.Paths = !s.Visibility.Paths
		case core.KindArea:
			s.Visibility.Areas = !s.Visibility.Areas
		case core.KindOverlay:
			s.Visibility.Overlays = !s.Visibility.Overlays
		}
		return s

	case AddMarker:
		s.Markers = appendCopy(s.Markers, a.Marker)
		s.Selection = core.Select(core.KindMarker, a.Marker.ID)
		return s

	case UpdateMarker:
		s.Markers = patchMarker(s.Markers, a.ID, a.Patch)
		return s

	case DeleteMarker:
		s.Markers = deleteMarker(s.Markers, a.ID)
		s.Selection = clearIfSelected(s.Selection, core.KindMarker, a.ID)
		return s

	case AddPath:
		s.Paths = appendCopy(s.Paths, a.Path)
		s.Selection = core.Select(core.KindPath, a.Path.ID)
		s.Mode = ModeDraw
		return s

	case UpdatePath:
		s.Paths = patchPath(s.Paths, a.ID, a.Patch)
		return s

	case DeletePath:
		s.Paths = deletePath(s.Paths, a.ID)
		s.Selection = clearIfSelected(s.Selection, core.KindPath, a.ID)
		return s

	case AppendPathVertex:
		s.Paths = mutatePathPoints(s.Paths, a.ID, func(points core.VertexList) core.VertexList {
			return append(points, core.Vertex{Coordinates: a.Coordinates})
		})
		return s

	case UpdatePathVertex:
		s.Paths = mutatePathPoints(s.Paths, a.ID, func(points core.VertexList) core.VertexList {
			if a.Index < 0 || a.Index >= len(points) {
				return points
			}
			a.Patch.apply(&points[a.Index])
			return points
		})
		return s

	case AddArea:
		s.Areas = appendCopy(s.Areas, a.Area)
		s.Selection = core.Select(core.KindArea, a.Area.ID)
		s.Mode = ModeDraw
		return s

	case UpdateArea:
		s.Areas = patchArea(s.Areas, a.ID, a.Patch)
		return s

	case DeleteArea:
		s.Areas = deleteArea(s.Areas, a.ID)
		s.Selection = clearIfSelected(s.Selection, core.KindArea, a.ID)
		return s

	case AppendAreaVertex:
		s.Areas = mutateAreaPoints(s.Areas, a.ID, func(points core.VertexList) core.VertexList {
			return append(points, core.Vertex{Coordinates: a.Coordinates})
		})
		return s

	case UpdateAreaVertex:
		s.Areas = mutateAreaPoints(s.Areas, a.ID, func(points core.VertexList) core.VertexList {
			if a.Index < 0 || a.Index >= len(points) {
				return points
			}
			a.Patch.apply(&points[a.Index])
			return points
		})
		return s

	case InsertAreaVertex:
		s.Areas = mutateAreaPoints(s.Areas, a.ID, func(points core.VertexList) core.VertexList {
			if a.Index < 0 || a.Index >= len(points) {
				return points
			}
			out := make(core.VertexList, 0, len(points)+1)
			out = append(out, points[:a.Index+1]...)
			out = append(out, core.Vertex{Coordinates: a.Coordinates})
			out = append(out, points[a.Index+1:]...)
			return out
		})
		return s

	case DeleteAreaVertex:
		s.Areas = mutateAreaPoints(s.Areas, a.ID, func(points core.VertexList) core.VertexList {
			if a.Index < 0 || a.Index >= len(points) {
				return points
			}
			out := make(core.VertexList, 0, len(points)-1)
			out = append(out, points[:a.Index]...)
			out = append(out, points[a.Index+1:]...)
			return out
		})
		return s

	case AddOverlay:
		s.Overlays = appendCopy(s.Overlays, a.Overlay)
		s.Selection = core.Select(core.KindOverlay, a.Overlay.ID)
		return s

	case UpdateOverlay:
		s.Overlays = patchOverlay(s.Overlays, a.ID, a.Patch)
		return s

	case DeleteOverlay:
		s.Overlays = deleteOverlay(s.Overlays, a.ID)
		s.Selection = clearIfSelected(s.Selection, core.KindOverlay, a.ID)
		return s
	}
	return s
}

func appendCopy[T any](s []T, item T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, item)
}

// clearIfSelected drops the selection only when it referenced the deleted
// entity, in the same transition. Selection must never point at a removed
// id, not even transiently.
func clearIfSelected(sel *core.Selection, kind core.EntityKind, id string) *core.Selection {
	if sel.Is(kind, id) {
		return nil
	}
	return sel
}

func patchMarker(markers []core.Marker, id string, patch MarkerPatch) []core.Marker {
	out := make([]core.Marker, len(markers))
	copy(out, markers)
	for i := range out {
		if out[i].ID == id {
			patch.apply(&out[i])
		}
	}
	return out
}

func deleteMarker(markers []core.Marker, id string) []core.Marker {
	out := make([]core.Marker, 0, len(markers))
	for _, m := range markers {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

func patchPath(paths []core.Path, id string, patch PathPatch) []core.Path {
	out := make([]core.Path, len(paths))
	copy(out, paths)
	for i := range out {
		if out[i].ID == id {
			patch.apply(&out[i])
		}
	}
	return out
}

func deletePath(paths []core.Path, id string) []core.Path {
	out := make([]core.Path, 0, len(paths))
	for _, p := range paths {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// mutatePathPoints clones the target path's vertex list and applies fn to
// the clone, leaving the previous state untouched.
func mutatePathPoints(paths []core.Path, id string, fn func(core.VertexList) core.VertexList) []core.Path {
	out := make([]core.Path, len(paths))
	copy(out, paths)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		points := make(core.VertexList, len(out[i].Points))
		copy(points, out[i].Points)
		out[i].Points = fn(points)
	}
	return out
}

func patchArea(areas []core.Area, id string, patch AreaPatch) []core.Area {
	out := make([]core.Area, len(areas))
	copy(out, areas)
	for i := range out {
		if out[i].ID == id {
			patch.apply(&out[i])
		}
	}
	return out
}

func deleteArea(areas []core.Area, id string) []core.Area {
	out := make([]core.Area, 0, len(areas))
	for _, a := range areas {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func mutateAreaPoints(areas []core.Area, id string, fn func(core.VertexList) core.VertexList) []core.Area {
	out := make([]core.Area, len(areas))
	copy(out, areas)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		points := make(core.VertexList, len(out[i].Points))
		copy(points, out[i].Points)
		out[i].Points = fn(points)
	}
	return out
}

func patchOverlay(overlays []core.Overlay, id string, patch OverlayPatch) []core.Overlay {
	out := make([]core.Overlay, len(overlays))
	copy(out, overlays)
	for i := range out {
		if out[i].ID == id {
			patch.apply(&out[i])
		}
	}
	return out
}

func deleteOverlay(overlays []core.Overlay, id string) []core.Overlay {
	out := make([]core.Overlay, 0, len(overlays))
	for _, o := range overlays {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

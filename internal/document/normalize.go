package document

import (
	"sort"

	"github.com/google/uuid"

	"github.com/lorekeep/atlas/pkg/core"
)

// Flat is the editor-facing model: four flat collections with session-local
// generated ids. Ids live only for the editing session and are never stored.
type Flat struct {
	Markers  []core.Marker
	Paths    []core.Path
	Areas    []core.Area
	Overlays []core.Overlay
}

// Normalize flattens a stored document into the editor model. Marker items
// get their enclosing category key and a fresh id; path and area vertex
// lists are coerced to the canonical object shape (the codec already turned
// legacy bare pairs into vertices, nil lists become empty here); overlays
// pass through with an id. Category keys are walked in sorted order so the
// flat collections are deterministic.
func Normalize(doc Document) Flat {
	flat := Flat{
		Markers:  []core.Marker{},
		Paths:    []core.Path{},
		Areas:    []core.Area{},
		Overlays: []core.Overlay{},
	}

	for _, cat := range sortedKeys(doc.Annotations) {
		for _, item := range doc.Annotations[cat].Items {
			m := item
			m.ID = uuid.NewString()
			m.Category = cat
			flat.Markers = append(flat.Markers, m)
		}
	}

	for _, p := range doc.Paths {
		path := p
		path.ID = uuid.NewString()
		if path.Points == nil {
			path.Points = core.VertexList{}
		}
		flat.Paths = append(flat.Paths, path)
	}

	appendArea := func(a core.Area) {
		area := a
		area.ID = uuid.NewString()
		if area.Points == nil {
			area.Points = core.VertexList{}
		}
		flat.Areas = append(flat.Areas, area)
	}
	if doc.Areas.Legacy != nil {
		for _, a := range doc.Areas.Legacy {
			appendArea(a)
		}
	} else {
		for _, cat := range sortedKeys(doc.Areas.Groups) {
			for _, a := range doc.Areas.Groups[cat].Items {
				appendArea(a)
			}
		}
	}

	for _, o := range doc.Overlays {
		overlay := o
		overlay.ID = uuid.NewString()
		flat.Overlays = append(flat.Overlays, overlay)
	}

	return flat
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

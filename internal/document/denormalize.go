package document

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lorekeep/atlas/pkg/core"
)

// RegionsKey is the single category all areas are stored under. The editor
// flattens whatever grouping a document arrived with, and on save every
// area lands here; area category structure does not round-trip, only area
// content does. This matches the deployed document shape.
const RegionsKey = "regions"

// Denormalize rebuilds the nested storage document from the flat editor
// model. Session ids and the redundant marker category field are stripped
// from the stored items; markers regroup under their category key, areas
// collapse into the single regions group, paths and overlays stay flat.
func Denormalize(flat Flat) Document {
	doc := Document{
		Annotations: map[string]MarkerGroup{},
		Paths:       make([]core.Path, 0, len(flat.Paths)),
		Areas:       AreaSet{Groups: map[string]AreaGroup{}},
		Overlays:    make([]core.Overlay, 0, len(flat.Overlays)),
	}

	for _, m := range flat.Markers {
		cat := m.Category
		if cat == "" {
			cat = "default"
		}
		group, ok := doc.Annotations[cat]
		if !ok {
			group = MarkerGroup{Name: DisplayName(cat)}
		}
		item := m
		item.ID = ""
		item.Category = ""
		group.Items = append(group.Items, item)
		doc.Annotations[cat] = group
	}

	for _, p := range flat.Paths {
		path := p
		path.ID = ""
		doc.Paths = append(doc.Paths, path)
	}

	regions := AreaGroup{Name: DisplayName(RegionsKey)}
	regions.Items = make([]core.Area, 0, len(flat.Areas))
	for _, a := range flat.Areas {
		area := a
		area.ID = ""
		regions.Items = append(regions.Items, area)
	}
	doc.Areas.Groups[RegionsKey] = regions

	for _, o := range flat.Overlays {
		overlay := o
		overlay.ID = ""
		doc.Overlays = append(doc.Overlays, overlay)
	}

	return doc
}

// DisplayName derives a human-readable group name from a category key:
// underscores become spaces and each word is capitalized, so
// "points_of_interest" becomes "Points Of Interest".
func DisplayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

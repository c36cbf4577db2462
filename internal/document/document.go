// Package document defines the nested, category-grouped map document stored
// by the storage service, and converts it to and from the flat editor model.
//
// The two shapes are intentionally different: grouping by category key is
// ergonomic for storage and the public atlas, while editing wants flat
// collections with stable ids. The conversion pair lives here and nowhere
// else; inside the editor only the canonical flat shape appears.
package document

import (
	"bytes"
	"encoding/json"

	"github.com/lorekeep/atlas/pkg/core"
)

// MarkerGroup is one named category of markers. The category key is the
// enclosing map key; items carry no category field of their own.
type MarkerGroup struct {
	Name  string        `json:"name"`
	Items []core.Marker `json:"items"`
}

// UnmarshalJSON degrades malformed groups to empty instead of failing the
// document: a group whose items is not a list simply has no items.
func (g *MarkerGroup) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*g = MarkerGroup{}
		return nil
	}
	g.Name = raw.Name
	g.Items = nil
	var items []core.Marker
	if err := json.Unmarshal(raw.Items, &items); err == nil {
		g.Items = items
	}
	return nil
}

// AreaGroup is one named category of areas.
type AreaGroup struct {
	Name  string      `json:"name"`
	Items []core.Area `json:"items"`
}

func (g *AreaGroup) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*g = AreaGroup{}
		return nil
	}
	g.Name = raw.Name
	g.Items = nil
	var items []core.Area
	if err := json.Unmarshal(raw.Items, &items); err == nil {
		g.Items = items
	}
	return nil
}

// AreaSet holds the document's areas in either of the two accepted shapes:
// the current category-grouped map or the legacy flat array. Exactly one of
// Groups and Legacy is populated after decoding.
type AreaSet struct {
	Groups map[string]AreaGroup
	Legacy []core.Area
}

func (s *AreaSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*s = AreaSet{}
		return nil
	}
	switch trimmed[0] {
	case '[':
		var legacy []core.Area
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			*s = AreaSet{}
			return nil
		}
		*s = AreaSet{Legacy: legacy}
	case '{':
		var groups map[string]AreaGroup
		if err := json.Unmarshal(trimmed, &groups); err != nil {
			*s = AreaSet{}
			return nil
		}
		*s = AreaSet{Groups: groups}
	default:
		*s = AreaSet{}
	}
	return nil
}

// MarshalJSON always emits the grouped shape; the legacy array is accepted
// on input only.
func (s AreaSet) MarshalJSON() ([]byte, error) {
	if s.Groups == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.Groups)
}

// Document is the nested storage shape persisted per map.
type Document struct {
	Annotations map[string]MarkerGroup `json:"annotations"`
	Paths       []core.Path            `json:"paths"`
	Areas       AreaSet                `json:"areas"`
	Overlays    []core.Overlay         `json:"overlays"`
}

// UnmarshalJSON decodes each section independently so one malformed section
// degrades to empty without discarding the rest of the document. The editor
// must always come up in a usable state, even from partially corrupt input.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Annotations json.RawMessage `json:"annotations"`
		Paths       json.RawMessage `json:"paths"`
		Areas       json.RawMessage `json:"areas"`
		Overlays    json.RawMessage `json:"overlays"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Document{}
	if len(raw.Annotations) > 0 {
		var groups map[string]MarkerGroup
		if err := json.Unmarshal(raw.Annotations, &groups); err == nil {
			d.Annotations = groups
		}
	}
	if len(raw.Paths) > 0 {
		var paths []core.Path
		if err := json.Unmarshal(raw.Paths, &paths); err == nil {
			d.Paths = paths
		}
	}
	if len(raw.Areas) > 0 {
		_ = json.Unmarshal(raw.Areas, &d.Areas)
	}
	if len(raw.Overlays) > 0 {
		var overlays []core.Overlay
		if err := json.Unmarshal(raw.Overlays, &overlays); err == nil {
			d.Overlays = overlays
		}
	}
	return nil
}

// Parse decodes a stored document, tolerating malformed sections.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Package core contains the annotation geometry model shared between the
// editor, the document codec and the storage backends.
package core

import (
	"encoding/json"
	"math"
)

// EntityKind identifies one of the four annotation collections.
type EntityKind string

const (
	KindMarker  EntityKind = "marker"
	KindPath    EntityKind = "path"
	KindArea    EntityKind = "area"
	KindOverlay EntityKind = "overlay"
)

// Position is a point on the map-local plane. Coordinates are flat and
// non-geographic; no projection math applies. Marshals as [axis1, axis2].
type Position [2]float64

// Round returns the position with both axes rounded to 4 decimal places,
// the precision contract for all gesture-written coordinates.
func (p Position) Round() Position {
	return Position{Round4(p[0]), Round4(p[1])}
}

// Add returns the position translated by delta.
func (p Position) Add(delta Position) Position {
	return Position{p[0] + delta[0], p[1] + delta[1]}
}

// Sub returns the component-wise difference p - other.
func (p Position) Sub(other Position) Position {
	return Position{p[0] - other[0], p[1] - other[1]}
}

// Round4 rounds v to 4 decimal places. Source data carries no meaningful
// precision beyond that, and unrounded drag output produces noisy diffs.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Position) Position {
	return Position{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// Vertex is a single node of a Path or Area. Text is optional free-form
// narrative attached to the vertex and is only used on Paths.
type Vertex struct {
	Coordinates Position `json:"coordinates"`
	Text        string   `json:"text,omitempty"`
}

// UnmarshalJSON accepts both the canonical object form and the legacy bare
// pair form [axis1, axis2] still present in older stored documents.
func (v *Vertex) UnmarshalJSON(data []byte) error {
	var pair Position
	if err := json.Unmarshal(data, &pair); err == nil {
		*v = Vertex{Coordinates: pair}
		return nil
	}

	type vertex Vertex // avoid recursion
	var obj vertex
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*v = Vertex(obj)
	return nil
}

// VertexList is an ordered vertex sequence that tolerates malformed input:
// anything that is not a JSON array decodes to an empty list, and elements
// that fail to decode are skipped rather than failing the document.
type VertexList []Vertex

func (l *VertexList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = VertexList{}
		return nil
	}
	out := make(VertexList, 0, len(raw))
	for _, r := range raw {
		var v Vertex
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// Positions returns the ordered coordinates of the list.
func (l VertexList) Positions() []Position {
	out := make([]Position, len(l))
	for i, v := range l {
		out[i] = v.Coordinates
	}
	return out
}

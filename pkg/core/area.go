package core

// Area is a closed polygon annotation with an independently styled label.
// Fewer than 3 vertices means the polygon is not yet drawable; that is an
// expected in-progress state, never an error. ID is session-local and never
// persisted.
type Area struct {
	ID string `json:"-"`

	Name   string     `json:"name,omitempty"`
	Points VertexList `json:"points"`

	// Polygon style
	LineColor     string   `json:"lineColor,omitempty"`
	InteriorColor string   `json:"interiorColor,omitempty"`
	FillOpacity   *float64 `json:"fillOpacity,omitempty"`

	// Label style. LabelPosition overrides the centroid-derived anchor.
	LabelPosition  *Position `json:"labelPosition,omitempty"`
	FontSize       float64   `json:"fontSize,omitempty"`
	LabelColor     string    `json:"labelColor,omitempty"`
	TextRotation   float64   `json:"textRotation,omitempty"`
	LabelBgColor   string    `json:"labelBgColor,omitempty"`
	LabelBgOpacity *float64  `json:"labelBgOpacity,omitempty"`
}

// HasGeometry reports whether the polygon has enough vertices to render.
func (a Area) HasGeometry() bool {
	return len(a.Points) >= 3
}

package core

// Path is an ordered polyline. Vertex order defines the drawn line and is
// preserved across normalization. ID is session-local and never persisted.
type Path struct {
	ID string `json:"-"`

	Name      string     `json:"name,omitempty"`
	LineColor string     `json:"lineColor,omitempty"`
	Opacity   float64    `json:"opacity,omitempty"`
	DashArray string     `json:"dashArray,omitempty"`
	Points    VertexList `json:"points"`
}

// HasGeometry reports whether the path has at least two vertices to draw a
// segment. A path below that is still valid data, just not yet drawable.
func (p Path) HasGeometry() bool {
	return len(p.Points) >= 2
}

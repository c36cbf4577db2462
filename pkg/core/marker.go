package core

// Marker is a single point annotation. In the stored document markers live
// under a category group; Category is filled in from the group key during
// normalization and never serialized on the item itself. ID is session-local
// and never persisted.
type Marker struct {
	ID       string `json:"-"`
	Category string `json:"-"`

	Label string  `json:"label,omitempty"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`

	// Style
	Type    string `json:"type,omitempty"`
	Color   string `json:"color,omitempty"`
	Display string `json:"display,omitempty"`
}

// Position returns the marker location as a plane position.
func (m Marker) Position() Position {
	return Position{m.Lat, m.Lng}
}

// SetPosition moves the marker to pos.
func (m *Marker) SetPosition(pos Position) {
	m.Lat = pos[0]
	m.Lng = pos[1]
}

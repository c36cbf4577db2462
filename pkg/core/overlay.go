package core

// Bounds is the pair of opposite corners defining an axis-aligned rectangle.
// Which element is "top-left" is not fixed; consumers must treat the two
// entries as an unordered bag of corners.
type Bounds [2]Position

// Width returns the absolute extent of the rectangle on the first axis.
func (b Bounds) Width() float64 {
	d := b[1][0] - b[0][0]
	if d < 0 {
		return -d
	}
	return d
}

// Height returns the absolute extent of the rectangle on the second axis.
func (b Bounds) Height() float64 {
	d := b[1][1] - b[0][1]
	if d < 0 {
		return -d
	}
	return d
}

// Center returns the rectangle center.
func (b Bounds) Center() Position {
	return Position{(b[0][0] + b[1][0]) / 2, (b[0][1] + b[1][1]) / 2}
}

// Translate returns the bounds with both corners moved by delta.
func (b Bounds) Translate(delta Position) Bounds {
	return Bounds{b[0].Add(delta), b[1].Add(delta)}
}

// Overlay is a rectangular image placed on the plane. ID is session-local
// and never persisted.
type Overlay struct {
	ID string `json:"-"`

	Name   string `json:"name,omitempty"`
	Image  string `json:"image,omitempty"`
	Bounds Bounds `json:"bounds"`
}

package editor

import "github.com/lorekeep/atlas/pkg/core"

// Handle names one of the four overlay corner drag handles. The stored
// bounds corners carry no fixed orientation, so each handle recombines only
// the axis components it visually controls regardless of which stored
// corner holds which value.
type Handle string

const (
	HandleTopLeft     Handle = "tl"
	HandleTopRight    Handle = "tr"
	HandleBottomLeft  Handle = "bl"
	HandleBottomRight Handle = "br"
)

// moveBounds translates both corners by the same delta, preserving the
// rectangle's size exactly.
func moveBounds(b core.Bounds, delta core.Position) core.Bounds {
	return b.Translate(delta)
}

// resizeBounds recomputes the bounds from a corner handle drag. tl and br
// replace a whole stored corner; tr and bl cross-combine one axis from the
// drag position with one axis from each stored corner.
func resizeBounds(b core.Bounds, h Handle, pos core.Position) core.Bounds {
	p1, p2 := b[0], b[1]
	switch h {
	case HandleTopLeft:
		return core.Bounds{pos, p2}
	case HandleBottomRight:
		return core.Bounds{p1, pos}
	case HandleTopRight:
		return core.Bounds{{pos[0], p1[1]}, {p2[0], pos[1]}}
	case HandleBottomLeft:
		return core.Bounds{{p1[0], pos[1]}, {pos[0], p2[1]}}
	}
	return b
}

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/atlas/pkg/core"
)

func TestResizeBounds(t *testing.T) {
	b := core.Bounds{{10, 20}, {30, 40}}
	pos := core.Position{5, 7}

	tests := []struct {
		name   string
		handle Handle
		want   core.Bounds
	}{
		{"top-left replaces first corner", HandleTopLeft, core.Bounds{{5, 7}, {30, 40}}},
		{"bottom-right replaces second corner", HandleBottomRight, core.Bounds{{10, 20}, {5, 7}}},
		{"top-right cross-combines", HandleTopRight, core.Bounds{{5, 20}, {30, 7}}},
		{"bottom-left cross-combines", HandleBottomLeft, core.Bounds{{10, 7}, {5, 40}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resizeBounds(b, tt.handle, pos))
		})
	}
}

func TestResizeBounds_UnknownHandleIsNoop(t *testing.T) {
	b := core.Bounds{{1, 2}, {3, 4}}
	assert.Equal(t, b, resizeBounds(b, Handle("center"), core.Position{9, 9}))
}

func TestMoveBounds(t *testing.T) {
	b := core.Bounds{{1, 2}, {3, 4}}
	moved := moveBounds(b, core.Position{10, 20})
	assert.Equal(t, core.Bounds{{11, 22}, {13, 24}}, moved)
}

func TestOverlayCornerDragEnd(t *testing.T) {
	s := emptyState()
	s.Overlays = []core.Overlay{{ID: "o1", Bounds: core.Bounds{{0, 0}, {10, 10}}}}

	next := OverlayCornerDragEnd(s, "o1", HandleBottomRight, core.Position{20.123456, 30.1})

	o, ok := next.OverlayByID("o1")
	require.True(t, ok)
	assert.Equal(t, core.Bounds{{0, 0}, {20.1235, 30.1}}, o.Bounds)
}

func TestOverlayCornerDragEnd_UnknownIDIsNoop(t *testing.T) {
	s := emptyState()
	next := OverlayCornerDragEnd(s, "ghost", HandleTopLeft, core.Position{1, 1})
	assert.Equal(t, s, next)
}

// Opposite corners can be dragged past each other; the bounds stay a valid
// unordered corner pair and the size math still holds.
func TestResizeBounds_CornersCanCross(t *testing.T) {
	b := core.Bounds{{0, 0}, {10, 10}}

	crossed := resizeBounds(b, HandleTopLeft, core.Position{15, 15})
	assert.Equal(t, core.Bounds{{15, 15}, {10, 10}}, crossed)
	assert.Equal(t, 5.0, crossed.Width())
	assert.Equal(t, 5.0, crossed.Height())
}

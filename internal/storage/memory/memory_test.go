package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/atlas/internal/document"
	"github.com/lorekeep/atlas/pkg/core"
)

func TestBackend_LoadMissing(t *testing.T) {
	b := New()

	_, found, err := b.Load(context.Background(), "phandalin")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBackend_SaveAndLoad(t *testing.T) {
	b := New()
	ctx := context.Background()

	doc := document.Denormalize(document.Flat{
		Markers: []core.Marker{{Category: "settlements", Label: "Harbor Town", Lat: 1, Lng: 2}},
	})
	require.NoError(t, b.Save(ctx, "phandalin", doc))

	got, found, err := b.Load(ctx, "phandalin")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Annotations["settlements"].Items, 1)
	assert.Equal(t, "Harbor Town", got.Annotations["settlements"].Items[0].Label)
}

func TestBackend_SaveReplacesWholesale(t *testing.T) {
	b := New()
	ctx := context.Background()

	first := document.Denormalize(document.Flat{
		Markers: []core.Marker{{Label: "First"}, {Label: "Second"}},
	})
	require.NoError(t, b.Save(ctx, "phandalin", first))

	second := document.Denormalize(document.Flat{
		Paths: []core.Path{{Name: "Trade Road"}},
	})
	require.NoError(t, b.Save(ctx, "phandalin", second))

	got, found, err := b.Load(ctx, "phandalin")
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, got.Annotations["default"].Items)
	require.Len(t, got.Paths, 1)
	assert.Equal(t, "Trade Road", got.Paths[0].Name)
}

func TestBackend_KeysAreIndependent(t *testing.T) {
	b := New()
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, "map-a", document.Denormalize(document.Flat{})))

	_, found, err := b.Load(ctx, "map-b")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBackend_CloseDiscards(t *testing.T) {
	b := New()
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, "phandalin", document.Denormalize(document.Flat{})))
	require.NoError(t, b.Close())

	_, found, err := b.Load(ctx, "phandalin")
	require.NoError(t, err)
	assert.False(t, found)
}

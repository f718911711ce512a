package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyLayer_SetValue(t *testing.T) {
	layer := NewPropertyLayer("elevation", 4, 3, 0.5)

	assert.Equal(t, 0.5, layer.Value(Coord{Row: 1, Col: 2}))

	layer.Set(Coord{Row: 1, Col: 2}, 0.9)
	assert.Equal(t, 0.9, layer.Value(Coord{Row: 1, Col: 2}))

	// out of range reads as zero, writes are ignored
	layer.Set(Coord{Row: 9, Col: 0}, 1.0)
	assert.Equal(t, 0.0, layer.Value(Coord{Row: 9, Col: 0}))
}

func TestPropertyLayer_Apply(t *testing.T) {
	layer := NewPropertyLayer("gradient", 3, 2, 0)
	layer.Apply(func(c Coord, _ float64) float64 { return float64(c.Row + c.Col) })

	assert.Equal(t, 0.0, layer.Value(Coord{Row: 0, Col: 0}))
	assert.Equal(t, 3.0, layer.Value(Coord{Row: 1, Col: 2}))
}

func TestGrid_AttachLayer(t *testing.T) {
	g, err := New(4, 3)
	require.NoError(t, err)

	layer := NewPropertyLayer("fuel", 4, 3, 1)
	require.NoError(t, g.AttachLayer(layer))

	got, ok := g.Layer("fuel")
	require.True(t, ok)
	assert.Equal(t, layer, got)
	assert.Equal(t, 1.0, g.LayerValue("fuel", Coord{Row: 2, Col: 3}))

	// duplicate name
	assert.Error(t, g.AttachLayer(NewPropertyLayer("fuel", 4, 3, 0)))
	// dimension mismatch
	assert.Error(t, g.AttachLayer(NewPropertyLayer("wind", 2, 2, 0)))
}

func TestGrid_RemoveLayer(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.AttachLayer(NewPropertyLayer("heat", 2, 2, 0)))
	require.NoError(t, g.RemoveLayer("heat"))

	_, ok := g.Layer("heat")
	assert.False(t, ok)
	assert.Error(t, g.RemoveLayer("heat"))
	assert.Equal(t, 0.0, g.LayerValue("heat", Coord{Row: 0, Col: 0}))
}

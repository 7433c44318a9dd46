package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileSymbolRoundTrip(t *testing.T) {
	for _, tile := range []Tile{
		TileEmpty, TilePlatform, TileLadder, TileTerminal,
		TileSwitch, TileBridgeUp, TileBridgeDown,
	} {
		assert.Equal(t, tile, TileFromSymbol(tile.Symbol()))
	}
	// the mapping is total: anything unknown is empty
	assert.Equal(t, TileEmpty, TileFromSymbol('?'))
	assert.Equal(t, TileEmpty, TileFromSymbol(' '))
	assert.Equal(t, TileEmpty, TileFromSymbol('x'))
}

func TestLevelTileAt(t *testing.T) {
	level := NewLevel("t", []string{
		".#.",
		"|CB",
	}, Position{X: 0, Y: 0}, nil)

	assert.Equal(t, TilePlatform, level.TileAt(1, 0))
	assert.Equal(t, TileLadder, level.TileAt(0, 1))
	assert.Equal(t, TileTerminal, level.TileAt(1, 1))
	assert.Equal(t, TileSwitch, level.TileAt(2, 1))

	// out of bounds reads as empty, never panics
	assert.Equal(t, TileEmpty, level.TileAt(-1, 0))
	assert.Equal(t, TileEmpty, level.TileAt(0, -1))
	assert.Equal(t, TileEmpty, level.TileAt(3, 0))
	assert.Equal(t, TileEmpty, level.TileAt(0, 2))
}

func TestLevelStart(t *testing.T) {
	solo := NewLevel("solo", []string{"..."}, Position{X: 1, Y: 0}, nil)
	assert.Equal(t, Position{X: 1, Y: 0}, solo.Start(0))
	assert.Equal(t, Position{X: 1, Y: 0}, solo.Start(1))

	pair := NewLevel("pair", []string{"..."}, Position{X: 0, Y: 0}, &Position{X: 2, Y: 0})
	assert.Equal(t, Position{X: 0, Y: 0}, pair.Start(0))
	assert.Equal(t, Position{X: 2, Y: 0}, pair.Start(1))
}

func TestDirectionVector(t *testing.T) {
	cases := map[Direction][2]int{
		DirUp:    {0, -1},
		DirDown:  {0, 1},
		DirLeft:  {-1, 0},
		DirRight: {1, 0},
	}
	for dir, want := range cases {
		dx, dy, ok := dir.Vector()
		require.True(t, ok)
		assert.Equal(t, want[0], dx)
		assert.Equal(t, want[1], dy)
	}
	_, _, ok := Direction("sideways").Vector()
	assert.False(t, ok)
}

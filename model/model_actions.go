package model

// NewLevel builds a level from raw layout rows. Width is taken from the first
// row; the legend gets the default symbol names.
func NewLevel(name string, layout []string, start Position, start2 *Position) *Level {
	width := 0
	if len(layout) > 0 {
		width = len(layout[0])
	}
	return &Level{
		Name:              name,
		Size:              Size{Width: width, Height: len(layout)},
		StartingPosition:  start,
		StartingPosition2: start2,
		Legend:            DefaultLegend(),
		Layout:            layout,
	}
}

func DefaultLegend() map[string]string {
	return map[string]string{
		string(SymbolEmpty):      "empty",
		string(SymbolPlatform):   "platform",
		string(SymbolLadder):     "ladder",
		string(SymbolTerminal):   "terminal",
		string(SymbolSwitch):     "switch",
		string(SymbolBridgeUp):   "bridge (raised)",
		string(SymbolBridgeDown): "bridge (lowered)",
	}
}

// TileFromSymbol is total: unknown symbols read as Empty.
func TileFromSymbol(symbol rune) Tile {
	switch symbol {
	case SymbolPlatform:
		return TilePlatform
	case SymbolLadder:
		return TileLadder
	case SymbolTerminal:
		return TileTerminal
	case SymbolSwitch:
		return TileSwitch
	case SymbolBridgeUp:
		return TileBridgeUp
	case SymbolBridgeDown:
		return TileBridgeDown
	default:
		return TileEmpty
	}
}

func (t Tile) Symbol() rune {
	switch t {
	case TilePlatform:
		return SymbolPlatform
	case TileLadder:
		return SymbolLadder
	case TileTerminal:
		return SymbolTerminal
	case TileSwitch:
		return SymbolSwitch
	case TileBridgeUp:
		return SymbolBridgeUp
	case TileBridgeDown:
		return SymbolBridgeDown
	default:
		return SymbolEmpty
	}
}

// TileAt returns the raw tile at (x, y). Out-of-bounds coordinates read as
// Empty so neighbor probes behave uniformly at the grid edges.
func (l *Level) TileAt(x, y int) Tile {
	if y < 0 || y >= len(l.Layout) {
		return TileEmpty
	}
	row := l.Layout[y]
	if x < 0 || x >= len(row) {
		return TileEmpty
	}
	return TileFromSymbol(rune(row[x]))
}

func (l *Level) InBounds(p Position) bool {
	return p.X >= 0 && p.X < l.Size.Width && p.Y >= 0 && p.Y < l.Size.Height
}

// Start returns the starting position for an agent index. Index 0 is the
// primary start; any further agent uses the secondary start when present.
func (l *Level) Start(agent int) Position {
	if agent > 0 && l.StartingPosition2 != nil {
		return *l.StartingPosition2
	}
	return l.StartingPosition
}

// Vector is the unit step for a direction. ok is false for anything that is
// not one of the four cardinal directions.
func (d Direction) Vector() (dx, dy int, ok bool) {
	switch d {
	case DirUp:
		return 0, -1, true
	case DirDown:
		return 0, 1, true
	case DirLeft:
		return -1, 0, true
	case DirRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

package model

// Position is a grid coordinate. X grows to the right, Y grows downward
// (row 0 of the layout is the top of the level).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Size struct {
	Width  int `json:"width" validate:"required,min=1"`
	Height int `json:"height" validate:"required,min=1"`
}

// Level is an immutable description of a grid. It is replaced wholesale,
// never mutated in place.
type Level struct {
	Name              string            `json:"name,omitempty"`
	Size              Size              `json:"size" validate:"required"`
	StartingPosition  Position          `json:"startingPosition"`
	StartingPosition2 *Position         `json:"startingPosition2,omitempty"`
	Legend            map[string]string `json:"legend,omitempty"`
	Layout            []string          `json:"layout" validate:"required,min=1"`
}

// Tile is the closed set of tile kinds. Layout symbols map onto it totally:
// anything unknown reads as Empty.
type Tile int

const (
	TileEmpty Tile = iota
	TilePlatform
	TileLadder
	TileTerminal
	TileSwitch
	TileBridgeUp
	TileBridgeDown
)

const (
	SymbolEmpty      = '.'
	SymbolPlatform   = '#'
	SymbolLadder     = '|'
	SymbolTerminal   = 'C'
	SymbolSwitch     = 'B'
	SymbolBridgeUp   = 'Z'
	SymbolBridgeDown = 'T'
)

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Action names as clients see them.
const (
	ActionMoveLeft    = "multi_move[left]"
	ActionMoveRight   = "multi_move[right]"
	ActionMoveUp      = "multi_move[up]"
	ActionMoveDown    = "multi_move[down]"
	ActionUseTerminal = "use_terminal"
	ActionUseSwitch   = "use_switch"
)

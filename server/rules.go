package server

import (
	"github.com/zucenko/platformd/model"
)

// Rejection reasons reported to clients. These are part of the wire contract.
const (
	ReasonOutOfBounds  = "Out of bounds"
	ReasonBlocked      = "Blocked by wall or raised bridge"
	ReasonNoSupport    = "No platform under target"
	ReasonNotOnLadder  = "Must be on ladder to move up"
	ReasonNoLadderDown = "No ladder to move down"
	ReasonBadDirection = "Invalid movement direction"
	ReasonNoSwitch     = "No switch nearby"
	ReasonNoTerminal   = "No terminal nearby"
)

// EffectiveTile resolves the tile at (x, y) with the bridge override applied.
// Out of bounds resolves to Empty, never an error.
func EffectiveTile(level *model.Level, bridges bool, x, y int) model.Tile {
	tile := level.TileAt(x, y)
	if tile == model.TileBridgeUp && bridges {
		return model.TileBridgeDown
	}
	return tile
}

// CanMove decides whether a single step from one cell to an adjacent cell is
// legal. Bounds first, then the per-direction rule. Horizontal steps reject a
// solid target before looking for ground; vertical steps check the ladder
// precondition before anything about the target cell.
func CanMove(level *model.Level, bridges bool, from, to model.Position) (bool, string) {
	if !level.InBounds(to) {
		return false, ReasonOutOfBounds
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dy == 0 && (dx == 1 || dx == -1):
		if solid(EffectiveTile(level, bridges, to.X, to.Y)) {
			return false, ReasonBlocked
		}
		// Ground under the target cell. A lowered bridge counts as ground;
		// a raised one does not.
		switch EffectiveTile(level, bridges, to.X, to.Y+1) {
		case model.TilePlatform, model.TileLadder, model.TileBridgeDown:
			return true, ""
		}
		return false, ReasonNoSupport
	case dx == 0 && dy == -1:
		if EffectiveTile(level, bridges, from.X, from.Y) != model.TileLadder {
			return false, ReasonNotOnLadder
		}
		if solid(EffectiveTile(level, bridges, to.X, to.Y)) {
			return false, ReasonBlocked
		}
		return true, ""
	case dx == 0 && dy == 1:
		if EffectiveTile(level, bridges, from.X, from.Y+1) != model.TileLadder {
			return false, ReasonNoLadderDown
		}
		if solid(EffectiveTile(level, bridges, to.X, to.Y)) {
			return false, ReasonBlocked
		}
		return true, ""
	default:
		return false, ReasonBadDirection
	}
}

// solid tiles block entry outright.
func solid(t model.Tile) bool {
	return t == model.TilePlatform || t == model.TileBridgeUp
}

// AvailableActions enumerates the interactions that are worth offering from a
// position. It is advisory: move entries promise that the matching CanMove
// would accept the step onto a passable target.
func AvailableActions(level *model.Level, bridges bool, pos model.Position) []string {
	actions := make([]string, 0, 6)
	if EffectiveTile(level, bridges, pos.X-1, pos.Y+1) == model.TilePlatform {
		actions = append(actions, model.ActionMoveLeft)
	}
	if EffectiveTile(level, bridges, pos.X+1, pos.Y+1) == model.TilePlatform {
		actions = append(actions, model.ActionMoveRight)
	}
	if EffectiveTile(level, bridges, pos.X, pos.Y) == model.TileLadder {
		actions = append(actions, model.ActionMoveUp)
	}
	if EffectiveTile(level, bridges, pos.X, pos.Y+1) == model.TileLadder {
		actions = append(actions, model.ActionMoveDown)
	}
	if nearTile(level, bridges, pos, model.TileTerminal) {
		actions = append(actions, model.ActionUseTerminal)
	}
	if nearTile(level, bridges, pos, model.TileSwitch) {
		actions = append(actions, model.ActionUseSwitch)
	}
	return actions
}

// nearTile reports whether the tile is at pos or one of its four orthogonal
// neighbors.
func nearTile(level *model.Level, bridges bool, pos model.Position, tile model.Tile) bool {
	offsets := [5][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, off := range offsets {
		if EffectiveTile(level, bridges, pos.X+off[0], pos.Y+off[1]) == tile {
			return true
		}
	}
	return false
}

package server

import (
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/platformd/model"
)

// multiMove walks up to Steps cells in one direction. Every committed step is
// broadcast on its own so observers see the intermediate positions. The batch
// ends early on the first illegal step (already committed steps stay
// committed) or the moment the agent enters the terminal.
func (s *GameServer) multiMove(args MoveArgs) CommandResult {
	if args.Agent < 0 || args.Agent >= len(s.Store.Agents) {
		return CommandResult{Error: "Agent index out of range"}
	}
	dx, dy, ok := args.Direction.Vector()
	if !ok {
		return CommandResult{Error: ReasonBadDirection}
	}

	level := s.Store.Level
	pos := s.Store.Position(args.Agent)
	res := model.MoveResult{Results: make([]model.StepOutcome, 0, args.Steps)}

	for step := 0; step < args.Steps; step++ {
		next := model.Position{X: pos.X + dx, Y: pos.Y + dy}
		allowed, reason := CanMove(level, s.Store.Bridges, pos, next)
		if !allowed {
			log.Debugf("move agent=%d %s rejected at %v: %s", args.Agent, args.Direction, pos, reason)
			res.Results = append(res.Results, model.StepOutcome{
				Success:          false,
				Position:         pos,
				Reason:           reason,
				AvailableActions: AvailableActions(level, s.Store.Bridges, pos),
			})
			break
		}
		pos = next
		s.Store.SetPosition(pos, args.Agent)
		stepsTotal.Inc()
		s.broadcast()
		completed := EffectiveTile(level, s.Store.Bridges, pos.X, pos.Y) == model.TileTerminal
		res.Results = append(res.Results, model.StepOutcome{
			Success:          true,
			Position:         pos,
			LevelCompleted:   completed,
			AvailableActions: AvailableActions(level, s.Store.Bridges, pos),
		})
		if completed {
			log.Infof("agent %d reached the terminal at %v", args.Agent, pos)
			res.LevelCompleted = true
			break
		}
	}

	res.FinalPosition = s.Store.Position(args.Agent)
	return CommandResult{OK: true, Move: &res}
}

// switchAgent changes which agent the implicit commands target. An index one
// past the roster is rejected and nothing is broadcast.
func (s *GameServer) switchAgent(agent int) CommandResult {
	if agent < 0 || agent >= len(s.Store.Agents) {
		return CommandResult{Error: "Agent index out of range"}
	}
	s.Store.SetActiveAgent(agent)
	s.broadcast()
	state := s.gameState()
	return CommandResult{OK: true, State: &state}
}

// useSwitch presses the button next to (or under) the active agent. The
// effect is global: bridges lower for the whole level. One-way; repeated
// presses report success and change nothing.
func (s *GameServer) useSwitch() CommandResult {
	pos := s.Store.ActivePosition()
	if !nearTile(s.Store.Level, s.Store.Bridges, pos, model.TileSwitch) {
		return CommandResult{Error: ReasonNoSwitch}
	}
	s.Store.ActivateBridges()
	s.broadcast()
	log.Info("switch pressed, bridges lowered")
	state := s.gameState()
	return CommandResult{OK: true, State: &state}
}

// useTerminal reports completion when the active agent stands on or next to
// the terminal. It mutates nothing; completion stays an observable event.
func (s *GameServer) useTerminal() CommandResult {
	pos := s.Store.ActivePosition()
	if !nearTile(s.Store.Level, s.Store.Bridges, pos, model.TileTerminal) {
		return CommandResult{Error: ReasonNoTerminal}
	}
	state := s.gameState()
	state.LevelCompleted = true
	return CommandResult{OK: true, State: &state}
}

// reset puts the active agent back on its starting position.
func (s *GameServer) reset() CommandResult {
	agent := s.Store.ActiveAgent
	s.Store.SetPosition(s.Store.Level.Start(agent), agent)
	s.broadcast()
	state := s.gameState()
	return CommandResult{OK: true, State: &state}
}

// setLevel swaps the whole world: roster, active index and bridge flag are
// rebuilt from the new level.
func (s *GameServer) setLevel(level *model.Level) CommandResult {
	s.Store.SetLevel(level)
	s.broadcast()
	log.Infof("level set: %s (%dx%d, %d agents)",
		level.Name, level.Size.Width, level.Size.Height, len(s.Store.Agents))
	start := level.StartingPosition
	return CommandResult{OK: true, Start: &start}
}

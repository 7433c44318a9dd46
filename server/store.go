package server

import (
	"strings"
	"time"

	"github.com/zucenko/platformd/model"
)

// Store holds the mutable game state: the current level, the agent roster,
// the active agent index and the bridge flag. It is owned by the GameServer
// loop goroutine; nothing outside the loop touches it.
type Store struct {
	Level       *model.Level
	Agents      []model.Position
	ActiveAgent int
	Bridges     bool
}

func NewStore(level *model.Level) *Store {
	s := &Store{}
	s.SetLevel(level)
	return s
}

// SetLevel replaces the level, rebuilds the roster from the level's starting
// positions, and clears the active index and the bridge flag. This is the
// only operation that resizes the roster.
func (s *Store) SetLevel(level *model.Level) {
	s.Level = level
	s.Agents = []model.Position{level.StartingPosition}
	if level.StartingPosition2 != nil {
		s.Agents = append(s.Agents, *level.StartingPosition2)
	}
	s.ActiveAgent = 0
	s.Bridges = false
}

// Position returns the position of an agent. An out-of-range index yields the
// origin as a safe default.
func (s *Store) Position(agent int) model.Position {
	if agent < 0 || agent >= len(s.Agents) {
		return model.Position{}
	}
	return s.Agents[agent]
}

func (s *Store) ActivePosition() model.Position {
	return s.Position(s.ActiveAgent)
}

func (s *Store) SetPosition(pos model.Position, agent int) {
	if agent < 0 || agent >= len(s.Agents) {
		return
	}
	s.Agents[agent] = pos
}

// SetActiveAgent silently ignores out-of-range indexes.
func (s *Store) SetActiveAgent(agent int) {
	if agent < 0 || agent >= len(s.Agents) {
		return
	}
	s.ActiveAgent = agent
}

// ActivateBridges flips the one-way puzzle flag. Idempotent.
func (s *Store) ActivateBridges() {
	s.Bridges = true
}

// Snapshot derives a fresh full-state snapshot.
func (s *Store) Snapshot() model.Snapshot {
	agents := make([]model.Position, len(s.Agents))
	copy(agents, s.Agents)
	return model.Snapshot{
		Agents:           agents,
		ActiveAgent:      s.ActiveAgent,
		AgentCount:       len(s.Agents),
		Position:         s.ActivePosition(),
		BridgesActivated: s.Bridges,
		Map:              s.EffectiveMap(),
		Timestamp:        time.Now().UnixMilli(),
	}
}

// EffectiveMap renders the layout rows with the bridge override applied.
func (s *Store) EffectiveMap() []string {
	rows := make([]string, len(s.Level.Layout))
	for i, row := range s.Level.Layout {
		if s.Bridges && strings.ContainsRune(row, model.SymbolBridgeUp) {
			rows[i] = strings.ReplaceAll(row,
				string(model.SymbolBridgeUp), string(model.SymbolBridgeDown))
			continue
		}
		rows[i] = row
	}
	return rows
}

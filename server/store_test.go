package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/platformd/model"
)

func twoAgentLevel() *model.Level {
	return model.NewLevel("pair", []string{
		"........",
		"........",
		"########",
	}, model.Position{X: 0, Y: 1}, &model.Position{X: 7, Y: 1})
}

func TestStoreRosterFromLevel(t *testing.T) {
	single := NewStore(corridorLevel())
	require.Len(t, single.Agents, 1)
	assert.Equal(t, model.Position{X: 1, Y: 1}, single.ActivePosition())

	pair := NewStore(twoAgentLevel())
	require.Len(t, pair.Agents, 2)
	assert.Equal(t, model.Position{X: 0, Y: 1}, pair.Position(0))
	assert.Equal(t, model.Position{X: 7, Y: 1}, pair.Position(1))
	assert.Equal(t, 0, pair.ActiveAgent)
}

func TestStorePositionOutOfRangeDefaultsToOrigin(t *testing.T) {
	s := NewStore(corridorLevel())
	assert.Equal(t, model.Position{}, s.Position(-1))
	assert.Equal(t, model.Position{}, s.Position(1))
	assert.Equal(t, model.Position{}, s.Position(99))
}

func TestStoreSetActiveAgentIgnoresOutOfRange(t *testing.T) {
	s := NewStore(twoAgentLevel())
	s.SetActiveAgent(1)
	assert.Equal(t, 1, s.ActiveAgent)

	s.SetActiveAgent(2) // one past the end
	assert.Equal(t, 1, s.ActiveAgent)
	s.SetActiveAgent(-1)
	assert.Equal(t, 1, s.ActiveAgent)
}

func TestStoreActivateBridgesIdempotent(t *testing.T) {
	s := NewStore(bridgeLevel())
	require.False(t, s.Bridges)

	s.ActivateBridges()
	assert.True(t, s.Bridges)
	first := s.EffectiveMap()

	s.ActivateBridges()
	assert.True(t, s.Bridges)
	assert.Equal(t, first, s.EffectiveMap())
	assert.Equal(t, "###TT###", first[2])
}

func TestStoreSetLevelResetsEverything(t *testing.T) {
	s := NewStore(twoAgentLevel())
	s.SetActiveAgent(1)
	s.SetPosition(model.Position{X: 3, Y: 1}, 1)
	s.ActivateBridges()

	s.SetLevel(corridorLevel())
	assert.Len(t, s.Agents, 1)
	assert.Equal(t, 0, s.ActiveAgent)
	assert.False(t, s.Bridges)
	assert.Equal(t, model.Position{X: 1, Y: 1}, s.ActivePosition())
}

func TestStoreSnapshot(t *testing.T) {
	s := NewStore(twoAgentLevel())
	s.SetActiveAgent(1)

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.AgentCount)
	assert.Equal(t, 1, snap.ActiveAgent)
	assert.Equal(t, s.Position(1), snap.Position)
	assert.False(t, snap.BridgesActivated)
	assert.Equal(t, s.Level.Layout, snap.Map)
	assert.Positive(t, snap.Timestamp)

	// the snapshot owns its roster copy
	snap.Agents[0] = model.Position{X: 5, Y: 5}
	assert.Equal(t, model.Position{X: 0, Y: 1}, s.Position(0))

	later := s.Snapshot()
	assert.GreaterOrEqual(t, later.Timestamp, snap.Timestamp)
}

package model

// Snapshot is the full state pushed to every subscriber on each committed
// change. It is computed fresh on every emission, never cached.
type Snapshot struct {
	Agents           []Position `json:"agents"`
	ActiveAgent      int        `json:"activeAgent"`
	AgentCount       int        `json:"agentCount"`
	Position         Position   `json:"position"`
	BridgesActivated bool       `json:"bridgesActivated"`
	Map              []string   `json:"map"`
	Timestamp        int64      `json:"timestamp"`
}

// StepOutcome is one entry of a multi-move batch. On failure Position holds
// the unchanged position and Reason says why the step was rejected.
type StepOutcome struct {
	Success          bool     `json:"success"`
	Position         Position `json:"position"`
	Reason           string   `json:"reason,omitempty"`
	LevelCompleted   bool     `json:"levelCompleted"`
	AvailableActions []string `json:"available_actions,omitempty"`
}

type MoveResult struct {
	Results        []StepOutcome `json:"results"`
	FinalPosition  Position      `json:"finalPosition"`
	LevelCompleted bool          `json:"levelCompleted"`
}

// GameState is the polled variant of Snapshot, extended with the advisory
// action list the agent clients plan from.
type GameState struct {
	Snapshot
	AvailableActions []string `json:"available_actions"`
	LevelCompleted   bool     `json:"levelCompleted"`
}

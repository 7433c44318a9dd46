package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/platformd/model"
)

// commandTimeout bounds how long an HTTP handler waits for the loop.
const commandTimeout = 200 * time.Millisecond

// writeWait bounds a single websocket write to a subscriber.
const writeWait = 5 * time.Second

// sendBuffer is the per-subscriber snapshot queue depth. A subscriber that
// falls further behind loses individual snapshots, not the connection.
const sendBuffer = 16

// GameServer serializes every state mutation through its loop goroutine.
// HTTP handlers never touch the Store directly; they submit Commands and
// wait for the reply.
type GameServer struct {
	Store        *Store
	Commands     chan Command
	Subscribes   chan *Subscriber
	Unsubscribes chan *Subscriber
	Subscribers  map[string]*Subscriber
	Upgrader     *websocket.Upgrader
}

type CommandKind int

const (
	CmdMultiMove CommandKind = iota
	CmdSwitchAgent
	CmdUseTerminal
	CmdUseSwitch
	CmdReset
	CmdSetLevel
	CmdGetLevel
	CmdState
)

type MoveArgs struct {
	Direction model.Direction
	Steps     int
	Agent     int
}

type Command struct {
	Kind  CommandKind
	Move  MoveArgs
	Agent int
	Level *model.Level
	Reply chan CommandResult
}

// CommandResult carries either an error string (rule violation or validation
// failure, the Store is untouched) or the payload for the command kind.
type CommandResult struct {
	OK    bool
	Error string
	Move  *model.MoveResult
	State *model.GameState
	Level *model.Level
	Start *model.Position
}

// Subscriber is one open broadcast handle. The loop goroutine owns the map
// entry and is the only closer of Send.
type Subscriber struct {
	Id   string
	Conn *websocket.Conn
	Send chan []byte
}

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/platformd/model"
)

func NewGameServer(store *Store) *GameServer {
	return &GameServer{
		Store:        store,
		Commands:     make(chan Command),
		Subscribes:   make(chan *Subscriber),
		Unsubscribes: make(chan *Subscriber, sendBuffer),
		Subscribers:  make(map[string]*Subscriber),
		Upgrader:     &websocket.Upgrader{},
	}
}

// Loop is the single goroutine that owns the Store and the subscriber set.
// Each command runs to completion, broadcasts included, before the next one
// is picked up.
func (s *GameServer) Loop() {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case cmd := <-s.Commands:
			commandsTotal.WithLabelValues(cmd.Kind.Name()).Inc()
			cmd.Reply <- s.dispatch(cmd)
		case sub := <-s.Subscribes:
			s.addSubscriber(sub)
		case sub := <-s.Unsubscribes:
			s.removeSubscriber(sub)
		}
	}
}

func (s *GameServer) dispatch(cmd Command) CommandResult {
	switch cmd.Kind {
	case CmdMultiMove:
		return s.multiMove(cmd.Move)
	case CmdSwitchAgent:
		return s.switchAgent(cmd.Agent)
	case CmdUseTerminal:
		return s.useTerminal()
	case CmdUseSwitch:
		return s.useSwitch()
	case CmdReset:
		return s.reset()
	case CmdSetLevel:
		return s.setLevel(cmd.Level)
	case CmdGetLevel:
		return CommandResult{OK: true, Level: s.Store.Level}
	case CmdState:
		state := s.gameState()
		return CommandResult{OK: true, State: &state}
	default:
		log.Errorf("dispatch: unexpected command kind %d", cmd.Kind)
		return CommandResult{Error: "Unknown command"}
	}
}

// addSubscriber registers the handle and immediately pushes one full
// snapshot, so a late joiner is never blind to the current state.
func (s *GameServer) addSubscriber(sub *Subscriber) {
	s.Subscribers[sub.Id] = sub
	subscriberCount.Set(float64(len(s.Subscribers)))
	log.Infof("subscriber %s joined (%d total)", sub.Id, len(s.Subscribers))
	if data, err := json.Marshal(s.Store.Snapshot()); err == nil {
		s.push(sub, data)
	} else {
		log.Errorf("cannot marshal snapshot for %s: %v", sub.Id, err)
	}
}

// removeSubscriber is idempotent; both pumps may request removal for the
// same handle.
func (s *GameServer) removeSubscriber(sub *Subscriber) {
	if _, ok := s.Subscribers[sub.Id]; !ok {
		return
	}
	delete(s.Subscribers, sub.Id)
	close(sub.Send)
	_ = sub.Conn.Close()
	subscriberCount.Set(float64(len(s.Subscribers)))
	log.Infof("subscriber %s left (%d total)", sub.Id, len(s.Subscribers))
}

// broadcast serializes the snapshot once and fans it out to every open
// handle. Failures never reach the command that triggered the broadcast.
func (s *GameServer) broadcast() {
	data, err := json.Marshal(s.Store.Snapshot())
	if err != nil {
		log.Errorf("cannot marshal snapshot: %v", err)
		return
	}
	for _, sub := range s.Subscribers {
		s.push(sub, data)
	}
	broadcastsTotal.Inc()
}

// push enqueues without blocking the loop. A full queue costs that subscriber
// this snapshot only.
func (s *GameServer) push(sub *Subscriber, data []byte) {
	select {
	case sub.Send <- data:
	default:
		droppedTotal.Inc()
		log.Warnf("subscriber %s is slow, dropping snapshot", sub.Id)
	}
}

// HandleSubscribe upgrades the connection and hands the handle to the loop.
func (s *GameServer) HandleSubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("websocket upgrade err %v", err)
			return
		}
		sub := &Subscriber{
			Id:   uuid.NewString(),
			Conn: conn,
			Send: make(chan []byte, sendBuffer),
		}
		go sub.LoopChannelWrite(s)
		go sub.LoopChannelRead(s)
		select {
		case s.Subscribes <- sub:
		case <-time.After(commandTimeout):
			log.Warn("subscribe request timed out")
			_ = conn.Close()
		}
	}
}

// LoopChannelRead drains the connection until it errors, which is how a
// transport-level disconnect is detected.
func (sub *Subscriber) LoopChannelRead(s *GameServer) {
	for {
		if _, _, err := sub.Conn.NextReader(); err != nil {
			break
		}
	}
	s.Unsubscribes <- sub
}

// LoopChannelWrite only consumes; it ends when the loop closes Send or a
// write fails.
func (sub *Subscriber) LoopChannelWrite(s *GameServer) {
	for data := range sub.Send {
		_ = sub.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warnf("subscriber %s write err %v", sub.Id, err)
			s.Unsubscribes <- sub
			return
		}
	}
}

// submit sends a command to the loop and waits for the reply, bounded on
// both legs so a stuck loop cannot pin HTTP handlers.
func (s *GameServer) submit(cmd Command) (CommandResult, bool) {
	cmd.Reply = make(chan CommandResult, 1)
	select {
	case s.Commands <- cmd:
	case <-time.After(commandTimeout):
		return CommandResult{}, false
	}
	select {
	case res := <-cmd.Reply:
		return res, true
	case <-time.After(commandTimeout):
		return CommandResult{}, false
	}
}

func (s *GameServer) gameState() model.GameState {
	snap := s.Store.Snapshot()
	pos := s.Store.ActivePosition()
	return model.GameState{
		Snapshot:         snap,
		AvailableActions: AvailableActions(s.Store.Level, s.Store.Bridges, pos),
		LevelCompleted:   EffectiveTile(s.Store.Level, s.Store.Bridges, pos.X, pos.Y) == model.TileTerminal,
	}
}

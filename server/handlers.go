package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/platformd/model"
)

var validate = validator.New()

type multiMoveRequest struct {
	Direction  string `json:"direction" validate:"required,oneof=up down left right"`
	Steps      int    `json:"steps" validate:"required,min=1,max=10"`
	AgentIndex int    `json:"agentIndex" validate:"min=0"`
}

type switchAgentRequest struct {
	AgentIndex *int `json:"agentIndex" validate:"required,min=0"`
}

type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data}); err != nil {
		log.Warnf("cannot write response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Error: msg}); err != nil {
		log.Warnf("cannot write response: %v", err)
	}
}

// decodeAndValidate rejects malformed input before anything reaches the loop;
// a rejected request is a pure no-op.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func (s *GameServer) HandleMultiMove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req multiMoveRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		res, ok := s.submit(Command{Kind: CmdMultiMove, Move: MoveArgs{
			Direction: model.Direction(req.Direction),
			Steps:     req.Steps,
			Agent:     req.AgentIndex,
		}})
		s.respond(w, res, ok, func() interface{} { return res.Move })
	}
}

func (s *GameServer) HandleGameState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.submit(Command{Kind: CmdState})
		s.respond(w, res, ok, func() interface{} { return res.State })
	}
}

func (s *GameServer) HandleUseTerminal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.submit(Command{Kind: CmdUseTerminal})
		s.respond(w, res, ok, func() interface{} { return res.State })
	}
}

func (s *GameServer) HandleUseSwitch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.submit(Command{Kind: CmdUseSwitch})
		s.respond(w, res, ok, func() interface{} { return res.State })
	}
}

func (s *GameServer) HandleSwitchAgent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req switchAgentRequest
		if err := decodeAndValidate(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		res, ok := s.submit(Command{Kind: CmdSwitchAgent, Agent: *req.AgentIndex})
		s.respond(w, res, ok, func() interface{} { return res.State })
	}
}

func (s *GameServer) HandleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.submit(Command{Kind: CmdReset})
		s.respond(w, res, ok, func() interface{} { return res.State })
	}
}

func (s *GameServer) HandleSetLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var level model.Level
		if err := decodeAndValidate(r, &level); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := ValidateLevel(&level); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		res, ok := s.submit(Command{Kind: CmdSetLevel, Level: &level})
		s.respond(w, res, ok, func() interface{} {
			return map[string]interface{}{"startingPosition": res.Start}
		})
	}
}

func (s *GameServer) HandleGetLevel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := s.submit(Command{Kind: CmdGetLevel})
		s.respond(w, res, ok, func() interface{} {
			return map[string]interface{}{"level": res.Level}
		})
	}
}

// respond maps a command result onto the wire envelope. Rule violations keep
// HTTP 200 with success=false; only a stuck loop turns into a timeout status.
func (s *GameServer) respond(w http.ResponseWriter, res CommandResult, ok bool, data func() interface{}) {
	if !ok {
		respondError(w, http.StatusRequestTimeout, "command timed out")
		return
	}
	if !res.OK {
		respondError(w, http.StatusOK, res.Error)
		return
	}
	respondData(w, data())
}

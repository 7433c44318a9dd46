package main

import (
	"net/http"

	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const URI_WS = "/play"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleSubscribe())

	s.router.HandleFunc("POST", "/api/level", s.GameServer.HandleSetLevel())
	s.router.HandleFunc("GET", "/api/level", s.GameServer.HandleGetLevel())
	s.router.HandleFunc("POST", "/api/character/multi-move", s.GameServer.HandleMultiMove())
	s.router.HandleFunc("GET", "/api/character/multi-move", s.GameServer.HandleGameState())
	s.router.HandleFunc("POST", "/api/character/use-computer", s.GameServer.HandleUseTerminal())
	s.router.HandleFunc("POST", "/api/character/use-button", s.GameServer.HandleUseSwitch())
	s.router.HandleFunc("POST", "/api/character/switch-agent", s.GameServer.HandleSwitchAgent())
	s.router.HandleFunc("POST", "/api/character/reset-position", s.GameServer.HandleReset())

	s.router.Handle("GET", "/metrics", promhttp.Handler())
	s.router.HandleFunc("GET", "/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

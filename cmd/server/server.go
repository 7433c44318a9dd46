package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zucenko/platformd/model"
	"github.com/zucenko/platformd/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	configureLogging()

	level := loadLevel()
	srv := Server{
		GameServer: server.NewGameServer(server.NewStore(level)),
	}
	go srv.GameServer.Loop()
	srv.routes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, srv.router))
}

func loadLevel() *model.Level {
	path := os.Getenv("LEVEL_FILE")
	if path == "" {
		return server.DefaultLevel()
	}
	level, err := server.Load(path)
	if err != nil {
		log.Fatalf("cannot load level %s: %v", path, err)
	}
	return level
}

func configureLogging() {
	if file := os.Getenv("LOG_FILE"); file != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			log.Warnf("unknown LOG_LEVEL %q, keeping %s", lvl, log.GetLevel())
			return
		}
		log.SetLevel(parsed)
	}
}

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "platformd_commands_total",
		Help: "Commands processed by the game loop, by kind.",
	}, []string{"command"})

	stepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "platformd_move_steps_total",
		Help: "Committed movement steps.",
	})

	broadcastsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "platformd_broadcasts_total",
		Help: "State snapshots fanned out to subscribers.",
	})

	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "platformd_dropped_snapshots_total",
		Help: "Snapshots dropped because a subscriber queue was full.",
	})

	subscriberCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "platformd_subscribers",
		Help: "Currently connected broadcast subscribers.",
	})
)

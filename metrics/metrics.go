// Package metrics expone los contadores Prometheus del bot, servidos
// por el endpoint /metrics del servidor de keep-alive.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesTracked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexo_messages_tracked_total",
		Help: "Mensajes de usuarios no bot que acreditaron XP.",
	})

	LevelUps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexo_level_ups_total",
		Help: "Subidas de nivel anunciadas.",
	})

	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexo_commands_handled_total",
		Help: "Comandos slash atendidos, por nombre de comando.",
	}, []string{"command"})

	TicketsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexo_tickets_opened_total",
		Help: "Tickets creados.",
	})

	TicketsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexo_tickets_closed_total",
		Help: "Tickets cerrados.",
	})

	DropsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nexo_drops_claimed_total",
		Help: "Drops reclamados con éxito.",
	})
)

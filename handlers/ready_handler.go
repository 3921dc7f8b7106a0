package handlers

import (
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// ReadyHandler emite la línea de arranque cuando el gateway confirma la
// sesión.
type ReadyHandler struct {
	Log interfaces.Logger
}

func NewReadyHandler(log interfaces.Logger) *ReadyHandler {
	return &ReadyHandler{Log: log}
}

func (h *ReadyHandler) Register(s *discordgo.Session) {
	s.AddHandler(h.onReady)
}

func (h *ReadyHandler) onReady(s *discordgo.Session, r *discordgo.Ready) {
	h.Log.Info("bot listo", "usuario", r.User.Username, "guilds", len(r.Guilds))
}

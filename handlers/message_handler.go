package handlers

import (
	"fmt"

	"nexo/config"
	"nexo/interfaces"
	"nexo/metrics"

	"github.com/bwmarrin/discordgo"
)

// MessageHandler acumula XP por cada mensaje rastreado y anuncia las
// subidas de nivel.
type MessageHandler struct {
	Log   interfaces.Logger
	Store interfaces.DataStore
	Cfg   *config.Config
}

func NewMessageHandler(log interfaces.Logger, store interfaces.DataStore, cfg *config.Config) *MessageHandler {
	return &MessageHandler{Log: log, Store: store, Cfg: cfg}
}

func (h *MessageHandler) Register(s *discordgo.Session) {
	s.AddHandler(h.onMessageCreate)
}

func (h *MessageHandler) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Solo mensajes de servidor escritos por humanos.
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	leveledUp, newLevel, err := h.Store.AddMessageXP(m.Author.ID)
	if err != nil {
		h.Log.Error("no se pudo acreditar el XP del mensaje", "error", err, "userID", m.Author.ID)
		return
	}
	metrics.MessagesTracked.Inc()

	if !leveledUp {
		return
	}
	metrics.LevelUps.Inc()

	// Dar un rol que el usuario ya tiene es un no-op para Discord, así
	// que la entrega es idempotente sin comprobaciones extra.
	if roleID := h.Cfg.RoleForLevel(newLevel); roleID != "" {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.Author.ID, roleID); err != nil {
			h.Log.Error("no se pudo entregar el rol de nivel", "error", err, "userID", m.Author.ID, "roleID", roleID)
		}
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("🎉 %s subió a nivel %d", m.Author.Mention(), newLevel)); err != nil {
		h.Log.Error("no se pudo anunciar la subida de nivel", "error", err, "channelID", m.ChannelID)
	}
}

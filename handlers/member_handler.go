package handlers

import (
	"fmt"
	"strings"

	"nexo/config"
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// MemberHandler da la bienvenida a los nuevos miembros y les asigna el
// rol inicial del sistema de niveles.
type MemberHandler struct {
	Log interfaces.Logger
	Cfg *config.Config
}

func NewMemberHandler(log interfaces.Logger, cfg *config.Config) *MemberHandler {
	return &MemberHandler{Log: log, Cfg: cfg}
}

func (h *MemberHandler) Register(s *discordgo.Session) {
	s.AddHandler(h.onGuildMemberAdd)
}

func (h *MemberHandler) onGuildMemberAdd(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	// Autorole: el rol del nivel 1 si está mapeado.
	if roleID := h.Cfg.RoleForLevel(1); roleID != "" {
		if err := s.GuildMemberRoleAdd(e.GuildID, e.User.ID, roleID); err != nil {
			h.Log.Error("no se pudo asignar el autorole", "error", err, "userID", e.User.ID)
		}
	}

	guild, err := s.State.Guild(e.GuildID)
	if err != nil {
		guild, err = s.Guild(e.GuildID)
		if err != nil {
			h.Log.Error("no se pudo leer el servidor para la bienvenida", "error", err, "guildID", e.GuildID)
			return
		}
	}
	channels, err := s.GuildChannels(e.GuildID)
	if err != nil {
		h.Log.Error("no se pudieron listar los canales", "error", err, "guildID", e.GuildID)
		return
	}

	channelID := pickWelcomeChannel(channels, h.Cfg.Welcome.ChannelHints, guild.SystemChannelID)
	if channelID == "" {
		return
	}

	createdAt, _ := discordgo.SnowflakeTimestamp(e.User.ID)
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎉 Bienvenido %s!", e.User.Username),
		Description: fmt.Sprintf("%s se ha unido al servidor.", e.User.Mention()),
		Color:       0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👥 Miembros", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "📅 Cuenta creada", Value: createdAt.Format("02/01/2006"), Inline: true},
		},
	}
	if avatar := e.User.AvatarURL(""); avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: avatar}
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		h.Log.Error("no se pudo enviar la bienvenida", "error", err, "channelID", channelID)
	}
}

// pickWelcomeChannel elige el canal de texto cuyo nombre contiene alguna
// de las pistas configuradas; si ninguno coincide, el canal de sistema.
func pickWelcomeChannel(channels []*discordgo.Channel, hints []string, systemChannelID string) string {
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		name := strings.ToLower(ch.Name)
		for _, hint := range hints {
			if strings.Contains(name, hint) {
				return ch.ID
			}
		}
	}
	return systemChannelID
}

package commands

import (
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// UnlockCommand devuelve al rol @everyone el permiso de enviar mensajes
// en el canal actual.
type UnlockCommand struct {
	Log interfaces.Logger
}

func (c *UnlockCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "unlock",
		Description:              "Desbloquea el canal",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageChannels),
	}
}

func (c *UnlockCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.ChannelPermissionSet(i.ChannelID, i.GuildID, discordgo.PermissionOverwriteTypeRole, discordgo.PermissionSendMessages, 0)
	if err != nil {
		c.Log.Error("no se pudo desbloquear el canal", "error", err, "channelID", i.ChannelID)
		respondEphemeral(s, i, "❌ No se pudo desbloquear el canal.")
		return
	}
	respondText(s, i, "🔓 Canal desbloqueado.")
}

func (c *UnlockCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *UnlockCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *UnlockCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *UnlockCommand) GetCategory() string                                                  { return "Moderación" }

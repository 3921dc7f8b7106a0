package commands

import (
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// LockCommand bloquea el canal actual denegando enviar mensajes al rol
// @everyone (cuyo ID coincide con el del servidor).
type LockCommand struct {
	Log interfaces.Logger
}

func (c *LockCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "lock",
		Description:              "Bloquea el canal",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageChannels),
	}
}

func (c *LockCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.ChannelPermissionSet(i.ChannelID, i.GuildID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages)
	if err != nil {
		c.Log.Error("no se pudo bloquear el canal", "error", err, "channelID", i.ChannelID)
		respondEphemeral(s, i, "❌ No se pudo bloquear el canal.")
		return
	}
	respondText(s, i, "🔒 Canal bloqueado.")
}

func (c *LockCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *LockCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *LockCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *LockCommand) GetCategory() string                                                  { return "Moderación" }

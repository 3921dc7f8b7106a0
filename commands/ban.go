package commands

import (
	"fmt"

	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// BanCommand banea a un usuario del servidor.
type BanCommand struct {
	Log interfaces.Logger
}

func (c *BanCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "ban",
		Description:              "Banea a un usuario",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionBanMembers),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usuario", Description: "Usuario a banear", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "razon", Description: "Razón del ban", Required: false},
		},
	}
}

func (c *BanCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	target := opts["usuario"].UserValue(s)
	reason := "Sin razón"
	if opt, ok := opts["razon"]; ok && opt.StringValue() != "" {
		reason = opt.StringValue()
	}

	// Sin borrar historial de mensajes (0 días).
	if err := s.GuildBanCreateWithReason(i.GuildID, target.ID, reason, 0); err != nil {
		c.Log.Error("no se pudo banear al usuario", "error", err, "userID", target.ID)
		respondEphemeral(s, i, fmt.Sprintf("❌ No se pudo banear a %s.", target.Username))
		return
	}
	respondText(s, i, fmt.Sprintf("✅ %s ha sido baneado. Razón: %s", target.Mention(), reason))
}

func (c *BanCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *BanCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *BanCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *BanCommand) GetCategory() string                                                  { return "Moderación" }

package commands

import (
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// ResetWarnsCommand reinicia el contador de warns de un usuario.
type ResetWarnsCommand struct {
	Store interfaces.DataStore
	Log   interfaces.Logger
}

func (c *ResetWarnsCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "resetwarns",
		Description:              "Reinicia los warns de un usuario",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionModerateMembers),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usuario", Description: "Usuario a reiniciar", Required: true},
		},
	}
}

func (c *ResetWarnsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := optionMap(i)["usuario"].UserValue(s)

	if err := c.Store.ResetWarns(target.ID); err != nil {
		c.Log.Error("no se pudieron reiniciar los warns", "error", err, "userID", target.ID)
		respondEphemeral(s, i, "❌ No se pudieron reiniciar los warns.")
		return
	}
	respondText(s, i, "Warns reiniciados.")
}

func (c *ResetWarnsCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *ResetWarnsCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *ResetWarnsCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *ResetWarnsCommand) GetCategory() string                                                  { return "Moderación" }

package commands

import (
	"fmt"

	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// SetLevelCommand fija el nivel de un usuario a mano, saltándose la
// acumulación normal de XP.
type SetLevelCommand struct {
	Store interfaces.DataStore
	Log   interfaces.Logger
}

func (c *SetLevelCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "setlevel",
		Description:              "Fija el nivel de un usuario",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionAdministrator),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usuario", Description: "Usuario a modificar", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "nivel", Description: "Nuevo nivel", Required: true},
		},
	}
}

func (c *SetLevelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	target := opts["usuario"].UserValue(s)
	level := int(opts["nivel"].IntValue())

	if err := c.Store.SetLevel(target.ID, level); err != nil {
		c.Log.Error("no se pudo guardar el nivel", "error", err, "userID", target.ID)
		respondEphemeral(s, i, "❌ No se pudo guardar el nivel.")
		return
	}
	respondText(s, i, fmt.Sprintf("✅ %s ahora es nivel %d.", target.Mention(), level))
}

func (c *SetLevelCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *SetLevelCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *SetLevelCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *SetLevelCommand) GetCategory() string                                                  { return "Niveles" }

package commands

import (
	"fmt"

	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// NivelCommand muestra el nivel y XP de quien lo invoca.
type NivelCommand struct {
	Store interfaces.DataStore
}

func (c *NivelCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "nivel",
		Description: "Muestra tu nivel",
	}
}

func (c *NivelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	level, xp := c.Store.GetLevel(i.Member.User.ID)
	respondText(s, i, fmt.Sprintf("Nivel: %d | XP: %d", level, xp))
}

func (c *NivelCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *NivelCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *NivelCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *NivelCommand) GetCategory() string                                                  { return "Niveles" }

package commands

import (
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// EmbedCommand publica un embed con título y descripción.
type EmbedCommand struct {
	Log interfaces.Logger
}

func (c *EmbedCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "embed",
		Description: "Envía un embed con título y descripción",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "titulo", Description: "Título del embed", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "descripcion", Description: "Descripción del embed", Required: true},
		},
	}
}

func (c *EmbedCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       opts["titulo"].StringValue(),
		Description: opts["descripcion"].StringValue(),
		Color:       0x3498db,
	})
}

func (c *EmbedCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *EmbedCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *EmbedCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *EmbedCommand) GetCategory() string                                                  { return "Utilidad" }

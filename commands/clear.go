package commands

import (
	"fmt"

	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// ClearCommand borra los últimos N mensajes del canal actual.
type ClearCommand struct {
	Log interfaces.Logger
}

func (c *ClearCommand) GetCommandDef() *discordgo.ApplicationCommand {
	minCount := float64(1)
	return &discordgo.ApplicationCommand{
		Name:                     "clear",
		Description:              "Borra mensajes del canal",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageMessages),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "cantidad",
				Description: "Cuántos mensajes borrar (máximo 100)",
				Required:    true,
				MinValue:    &minCount,
				MaxValue:    100,
			},
		},
	}
}

func (c *ClearCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	count := int(optionMap(i)["cantidad"].IntValue())

	messages, err := s.ChannelMessages(i.ChannelID, count, "", "", "")
	if err != nil {
		c.Log.Error("no se pudieron listar los mensajes a borrar", "error", err, "channelID", i.ChannelID)
		respondEphemeral(s, i, "❌ No se pudieron borrar los mensajes.")
		return
	}

	ids := make([]string, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	if err := s.ChannelMessagesBulkDelete(i.ChannelID, ids); err != nil {
		c.Log.Error("no se pudieron borrar los mensajes", "error", err, "channelID", i.ChannelID)
		respondEphemeral(s, i, "❌ No se pudieron borrar los mensajes.")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("%d mensajes borrados.", len(ids)))
}

func (c *ClearCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *ClearCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *ClearCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *ClearCommand) GetCategory() string                                                  { return "Moderación" }

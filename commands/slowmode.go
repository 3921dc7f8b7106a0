package commands

import (
	"fmt"

	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// SlowmodeCommand ajusta el rate limit por usuario del canal actual.
type SlowmodeCommand struct {
	Log interfaces.Logger
}

func (c *SlowmodeCommand) GetCommandDef() *discordgo.ApplicationCommand {
	minSeconds := float64(0)
	return &discordgo.ApplicationCommand{
		Name:                     "slowmode",
		Description:              "Activa slowmode en el canal",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageChannels),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "segundos",
				Description: "Segundos entre mensajes (0 lo desactiva)",
				Required:    true,
				MinValue:    &minSeconds,
				MaxValue:    21600,
			},
		},
	}
}

func (c *SlowmodeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	seconds := int(optionMap(i)["segundos"].IntValue())

	if _, err := s.ChannelEdit(i.ChannelID, &discordgo.ChannelEdit{RateLimitPerUser: &seconds}); err != nil {
		c.Log.Error("no se pudo configurar el slowmode", "error", err, "channelID", i.ChannelID)
		respondEphemeral(s, i, "❌ No se pudo configurar el slowmode.")
		return
	}
	respondText(s, i, fmt.Sprintf("Slowmode activado: %ds", seconds))
}

func (c *SlowmodeCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *SlowmodeCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *SlowmodeCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *SlowmodeCommand) GetCategory() string                                                  { return "Moderación" }

package commands

import (
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// SayCommand reenvía un mensaje como el bot en el canal actual.
type SayCommand struct {
	Log interfaces.Logger
}

func (c *SayCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "say",
		Description:              "Envía un mensaje con el bot",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageMessages),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "mensaje", Description: "Texto a enviar", Required: true},
		},
	}
}

func (c *SayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	message := optionMap(i)["mensaje"].StringValue()

	respondEphemeral(s, i, "Enviado.")
	if _, err := s.ChannelMessageSend(i.ChannelID, message); err != nil {
		c.Log.Error("no se pudo enviar el mensaje", "error", err, "channelID", i.ChannelID)
	}
}

func (c *SayCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *SayCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *SayCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *SayCommand) GetCategory() string                                                  { return "Utilidad" }

package commands

import (
	"fmt"

	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// MsgCommand reenvía un mensaje privado a un usuario. El envío es de
// mejor esfuerzo: cualquier fallo (DMs cerrados u otro) se reporta al
// invocador como un fallo genérico, sin distinguir la causa.
type MsgCommand struct {
	Log interfaces.Logger
}

func (c *MsgCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "msg",
		Description:              "Envía mensaje privado a un usuario",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageMessages),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usuario", Description: "Destinatario", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "mensaje", Description: "Texto a enviar", Required: true},
		},
	}
}

func (c *MsgCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	target := opts["usuario"].UserValue(s)
	message := opts["mensaje"].StringValue()

	if err := c.sendDM(s, target.ID, fmt.Sprintf("📩 Mensaje de %s: %s", i.Member.User.Username, message)); err != nil {
		c.Log.Warn("no se pudo entregar el mensaje privado", "error", err, "userID", target.ID)
		respondEphemeral(s, i, fmt.Sprintf("❌ No se pudo enviar el mensaje a %s", target.Mention()))
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("✅ Mensaje enviado a %s", target.Mention()))
}

func (c *MsgCommand) sendDM(s *discordgo.Session, userID, content string) error {
	ch, err := s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSend(ch.ID, content)
	return err
}

func (c *MsgCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *MsgCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *MsgCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *MsgCommand) GetCategory() string                                                  { return "Utilidad" }

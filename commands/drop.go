package commands

import (
	"errors"
	"fmt"

	"nexo/interfaces"
	"nexo/metrics"

	"github.com/bwmarrin/discordgo"
)

const dropClaimButtonID = "drop_claim_button"

// DropCommand publica un drop con botón de reclamo. El primero en
// pulsar gana; el estado vive en memoria mientras el proceso siga vivo.
type DropCommand struct {
	Log   interfaces.Logger
	Drops *DropRegistry
}

func (c *DropCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "drop",
		Description:              "Crear un drop",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageGuild),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "premio", Description: "Premio del drop", Required: true},
		},
	}
}

func (c *DropCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	prize := optionMap(i)["premio"].StringValue()

	embed := &discordgo.MessageEmbed{
		Title:       "🎁 Nuevo Drop",
		Description: fmt.Sprintf("Premio: **%s**\n¡Reclámalo ahora!", prize),
		Color:       0xffd700,
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "🎁 Reclamar Drop", Style: discordgo.SuccessButton, CustomID: dropClaimButtonID},
			}}},
		},
	})
	if err != nil {
		c.Log.Error("no se pudo publicar el drop", "error", err)
		return
	}

	// El estado se registra con el ID del mensaje recién publicado.
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		c.Log.Error("no se pudo recuperar el mensaje del drop", "error", err)
		return
	}
	c.Drops.Open(msg.ID, prize)
}

func (c *DropCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.MessageComponentData().CustomID != dropClaimButtonID {
		return
	}

	prize, err := c.Drops.Claim(i.Message.ID, i.Member.User.ID)
	switch {
	case errors.Is(err, ErrDropClaimed):
		respondEphemeral(s, i, "❌ Ya fue reclamado.")
	case errors.Is(err, ErrDropUnknown):
		respondEphemeral(s, i, "❌ Este drop ya no está activo.")
	case err != nil:
		c.Log.Error("fallo reclamando el drop", "error", err, "messageID", i.Message.ID)
		respondEphemeral(s, i, "❌ No se pudo reclamar el drop.")
	default:
		metrics.DropsClaimed.Inc()
		respondText(s, i, fmt.Sprintf("🎉 %s ganó el drop! Premio: **%s**", i.Member.User.Mention(), prize))
	}
}

func (c *DropCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *DropCommand) GetComponentIDs() []string                                        { return []string{dropClaimButtonID} }
func (c *DropCommand) GetCategory() string                                              { return "Drops" }

// DropsCommand lista los drops aún sin reclamar.
type DropsCommand struct {
	Drops *DropRegistry
}

func (c *DropsCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "drops",
		Description: "Muestra los drops activos",
	}
}

func (c *DropsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	open := c.Drops.OpenDrops()
	if len(open) == 0 {
		respondEphemeral(s, i, "No hay drops activos ahora mismo.")
		return
	}

	description := ""
	for _, drop := range open {
		description += fmt.Sprintf("🎁 **%s**\n", drop.Prize)
	}
	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🎁 Drops activos",
		Description: description,
		Color:       0xffd700,
	})
}

func (c *DropsCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *DropsCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *DropsCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *DropsCommand) GetCategory() string                                                  { return "Drops" }

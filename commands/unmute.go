package commands

import (
	"fmt"

	"nexo/config"
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// UnmuteCommand quita el rol de mute y cancela el desmuteo automático
// pendiente si lo hay.
type UnmuteCommand struct {
	Log     interfaces.Logger
	Unmutes interfaces.UnmuteScheduler
	Cfg     *config.Config
}

func (c *UnmuteCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "unmute",
		Description:              "Desmutea a un usuario",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionModerateMembers),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usuario", Description: "Usuario a desmutear", Required: true},
		},
	}
}

func (c *UnmuteCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := optionMap(i)["usuario"].UserValue(s)

	if c.Unmutes.Cancel(i.GuildID, target.ID) {
		c.Log.Info("desmuteo automático cancelado", "userID", target.ID)
	}

	if err := removeMuteRole(s, i.GuildID, target.ID, c.Cfg.Moderation.MuteRoleName); err != nil {
		c.Log.Error("no se pudo quitar el rol de mute", "error", err, "userID", target.ID)
		respondEphemeral(s, i, fmt.Sprintf("❌ No se pudo desmutear a %s.", target.Username))
		return
	}
	respondText(s, i, fmt.Sprintf("%s desmuteado.", target.Mention()))
}

func (c *UnmuteCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *UnmuteCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *UnmuteCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *UnmuteCommand) GetCategory() string                                                  { return "Moderación" }

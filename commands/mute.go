package commands

import (
	"fmt"
	"time"

	"nexo/config"
	"nexo/interfaces"

	"github.com/bwmarrin/discordgo"
)

// MuteCommand mutea a un usuario asignándole el rol de silencio y
// programa el desmuteo automático al vencer el tiempo.
type MuteCommand struct {
	Log     interfaces.Logger
	Unmutes interfaces.UnmuteScheduler
	Cfg     *config.Config
}

func (c *MuteCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "mute",
		Description:              "Mutea a un usuario",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionModerateMembers),
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usuario", Description: "Usuario a mutear", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "tiempo", Description: "Minutos de silencio (60 por defecto)", Required: false},
			{Type: discordgo.ApplicationCommandOptionString, Name: "razon", Description: "Razón del mute", Required: false},
		},
	}
}

func (c *MuteCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i)
	target := opts["usuario"].UserValue(s)

	minutes := c.Cfg.Moderation.DefaultMuteMinutes
	if opt, ok := opts["tiempo"]; ok {
		minutes = int(opt.IntValue())
	}
	reason := "Sin razón"
	if opt, ok := opts["razon"]; ok && opt.StringValue() != "" {
		reason = opt.StringValue()
	}

	muteRole, err := c.ensureMuteRole(s, i.GuildID)
	if err != nil {
		c.Log.Error("no se pudo preparar el rol de mute", "error", err, "guildID", i.GuildID)
		respondEphemeral(s, i, "❌ No se pudo preparar el rol de mute.")
		return
	}

	if err := s.GuildMemberRoleAdd(i.GuildID, target.ID, muteRole.ID); err != nil {
		c.Log.Error("no se pudo asignar el rol de mute", "error", err, "userID", target.ID)
		respondEphemeral(s, i, fmt.Sprintf("❌ No se pudo mutear a %s.", target.Username))
		return
	}

	respondText(s, i, fmt.Sprintf("🔇 %s muteado por %d min. Razón: %s", target.Mention(), minutes, reason))

	// Desmuteo automático. No bloquea esta respuesta y sobrevive al
	// handler; /unmute lo cancela por la clave (guild, usuario).
	guildID, userID, channelID := i.GuildID, target.ID, i.ChannelID
	c.Unmutes.Schedule(guildID, userID, time.Duration(minutes)*time.Minute, func() {
		if err := removeMuteRole(s, guildID, userID, c.Cfg.Moderation.MuteRoleName); err != nil {
			// El rol puede haberse quitado ya a mano: no es un fallo.
			c.Log.Warn("desmuteo automático sin efecto", "error", err, "userID", userID)
			return
		}
		if _, err := s.ChannelMessageSend(channelID, fmt.Sprintf("🔊 <@%s> ha sido desmuteado automáticamente.", userID)); err != nil {
			c.Log.Error("no se pudo anunciar el desmuteo automático", "error", err)
		}
	})
}

// ensureMuteRole busca el rol de mute por nombre y lo crea si no existe,
// negando enviar mensajes en todos los canales del servidor. La
// creación no está protegida contra dos primeros mutes simultáneos.
func (c *MuteCommand) ensureMuteRole(s *discordgo.Session, guildID string) (*discordgo.Role, error) {
	if role := findRoleByName(s, guildID, c.Cfg.Moderation.MuteRoleName); role != nil {
		return role, nil
	}

	role, err := s.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: c.Cfg.Moderation.MuteRoleName})
	if err != nil {
		return nil, err
	}

	channels, err := s.GuildChannels(guildID)
	if err != nil {
		return nil, err
	}
	for _, ch := range channels {
		if err := s.ChannelPermissionSet(ch.ID, role.ID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages); err != nil {
			c.Log.Warn("no se pudo denegar mensajes al rol de mute", "error", err, "channelID", ch.ID)
		}
	}
	return role, nil
}

// findRoleByName busca un rol por nombre exacto entre los roles del
// servidor; devuelve nil si no existe.
func findRoleByName(s *discordgo.Session, guildID, name string) *discordgo.Role {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil
	}
	for _, role := range roles {
		if role.Name == name {
			return role
		}
	}
	return nil
}

// removeMuteRole quita el rol de mute si el usuario aún lo tiene; si el
// rol ya no existe devuelve el error de búsqueda.
func removeMuteRole(s *discordgo.Session, guildID, userID, roleName string) error {
	role := findRoleByName(s, guildID, roleName)
	if role == nil {
		return fmt.Errorf("el rol %q no existe en el servidor", roleName)
	}
	return s.GuildMemberRoleRemove(guildID, userID, role.ID)
}

func (c *MuteCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *MuteCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)     {}
func (c *MuteCommand) GetComponentIDs() []string                                            { return []string{} }
func (c *MuteCommand) GetCategory() string                                                  { return "Moderación" }

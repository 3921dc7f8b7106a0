package commands

import (
	"fmt"
	"strings"
	"time"

	"nexo/config"
	"nexo/interfaces"
	"nexo/metrics"

	"github.com/bwmarrin/discordgo"
)

const (
	ticketSupportMenuID   = "ticket_menu_support"
	ticketMiddlemanMenuID = "ticket_menu_middleman"
	ticketClaimButtonID   = "ticket_claim_button"
	ticketCloseButtonID   = "ticket_close_button"
)

// Categorías del menú de soporte general.
var supportCategories = []string{"Soporte general", "Reporte", "Apelación", "Compra", "Sugerencia", "Otro"}

// TicketCommand publica el panel principal (/menu) y atiende todo el
// ciclo de vida de los tickets: creación por menú, reclamo y cierre.
type TicketCommand struct {
	Store interfaces.DataStore
	Log   interfaces.Logger
	Cfg   *config.Config
}

func (c *TicketCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "menu",
		Description:              "Muestra el panel principal de tickets",
		DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageGuild),
	}
}

func (c *TicketCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	supportOptions := make([]discordgo.SelectMenuOption, 0, len(supportCategories))
	for _, cat := range supportCategories {
		supportOptions = append(supportOptions, discordgo.SelectMenuOption{Label: cat, Value: cat})
	}
	tierOptions := make([]discordgo.SelectMenuOption, 0, len(c.Cfg.Tickets.Tiers))
	for _, tier := range c.Cfg.Tickets.Tiers {
		tierOptions = append(tierOptions, discordgo.SelectMenuOption{Label: "MM " + tier, Value: tier})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎫 Panel Principal",
		Description: "Selecciona una opción en los menús",
		Color:       0x3498db,
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.StringSelectMenu,
						CustomID:    ticketSupportMenuID,
						Placeholder: "🎫 Abrir un ticket de soporte",
						Options:     supportOptions,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.StringSelectMenu,
						CustomID:    ticketMiddlemanMenuID,
						Placeholder: "🤝 Pedir un middleman",
						Options:     tierOptions,
					},
				}},
			},
		},
	})
}

func (c *TicketCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.MessageComponentData().CustomID {
	case ticketSupportMenuID:
		category := i.MessageComponentData().Values[0]
		c.createTicket(s, i, c.Cfg.Tickets.SupportCategoryName, "ticket", category, c.supportRoleIDs(s, i.GuildID))
	case ticketMiddlemanMenuID:
		tier := i.MessageComponentData().Values[0]
		c.createTicket(s, i, c.Cfg.Tickets.MiddlemanCategoryName, "mm-"+strings.ToLower(tier), "MM "+tier, c.middlemanRoleIDs(s, i.GuildID, tier))
	case ticketClaimButtonID:
		c.claimTicket(s, i)
	case ticketCloseButtonID:
		c.closeTicket(s, i)
	}
}

// createTicket crea el canal privado del ticket, registra el mapeo
// usuario -> canal y publica el panel de reclamo/cierre dentro.
func (c *TicketCommand) createTicket(s *discordgo.Session, i *discordgo.InteractionCreate, containerName, prefix, label string, staffRoleIDs []string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})

	userID := i.Member.User.ID
	parentID, err := c.ensureCategory(s, i.GuildID, containerName)
	if err != nil {
		c.Log.Error("no se pudo preparar la categoría de tickets", "error", err, "category", containerName)
		c.editEphemeral(s, i, "❌ No se pudo crear el ticket.")
		return
	}

	overwrites := []*discordgo.PermissionOverwrite{
		{ID: i.GuildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
		{ID: userID, Type: discordgo.PermissionOverwriteTypeMember, Allow: discordgo.PermissionViewChannel},
	}
	for _, roleID := range staffRoleIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID: roleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: discordgo.PermissionViewChannel,
		})
	}

	ch, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:                 fmt.Sprintf("%s-%s", prefix, strings.ToLower(i.Member.User.Username)),
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             parentID,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		c.Log.Error("no se pudo crear el canal del ticket", "error", err, "userID", userID)
		c.editEphemeral(s, i, "❌ No se pudo crear el ticket.")
		return
	}

	previous, err := c.Store.SetTicket(userID, ch.ID)
	if err != nil {
		c.Log.Error("no se pudo registrar el ticket", "error", err, "userID", userID)
	}
	if previous != "" {
		// El ticket anterior del usuario queda huérfano: el registro ya
		// no lo apunta pero su canal sigue existiendo.
		c.Log.Warn("ticket anterior sobrescrito sin cerrar", "userID", userID, "orphanedChannelID", previous)
	}
	metrics.TicketsOpened.Inc()

	panel := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎫 %s", label),
		Description: fmt.Sprintf("**Solicitante:** <@%s>\nEl staff te atenderá en breve.", userID),
		Color:       0x3498db,
	}
	_, err = s.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", userID),
		Embeds:  []*discordgo.MessageEmbed{panel},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "✅ Reclamar", Style: discordgo.SuccessButton, CustomID: ticketClaimButtonID},
			discordgo.Button{Label: "🔒 Cerrar", Style: discordgo.DangerButton, CustomID: ticketCloseButtonID},
		}}},
	})
	if err != nil {
		c.Log.Error("no se pudo publicar el panel del ticket", "error", err, "channelID", ch.ID)
	}

	c.editEphemeral(s, i, fmt.Sprintf("✅ Ticket creado: <#%s>", ch.ID))
}

// claimTicket anuncia quién atiende el ticket. El reclamo es
// informativo: no impide que otro miembro del staff también reclame.
func (c *TicketCommand) claimTicket(s *discordgo.Session, i *discordgo.InteractionCreate) {
	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		c.Log.Error("no se pudieron leer los roles del servidor", "error", err, "guildID", i.GuildID)
		respondEphemeral(s, i, "❌ No se pudo reclamar el ticket.")
		return
	}

	if !hasAllowedRole(i.Member.Roles, roles, c.Cfg.Tickets.StaffRoles) {
		respondEphemeral(s, i, "❌ No tienes permisos")
		return
	}

	if _, err := s.ChannelMessageSend(i.ChannelID, fmt.Sprintf("📋 Ticket reclamado por %s", i.Member.User.Mention())); err != nil {
		c.Log.Error("no se pudo anunciar el reclamo", "error", err, "channelID", i.ChannelID)
	}
	respondEphemeral(s, i, "✅ Ticket reclamado")
}

// closeTicket confirma, espera a que la confirmación llegue a renderizar
// y entonces borra el canal y el registro del ticket.
func (c *TicketCommand) closeTicket(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i, "🔒 Cerrando ticket...")

	channelID := i.ChannelID
	go func() {
		time.Sleep(2 * time.Second)

		if owner, ok := c.Store.TicketOwner(channelID); ok {
			if err := c.Store.DeleteTicket(owner); err != nil {
				c.Log.Error("no se pudo eliminar el registro del ticket", "error", err, "userID", owner)
			}
		}
		if _, err := s.ChannelDelete(channelID); err != nil {
			c.Log.Error("no se pudo borrar el canal del ticket", "error", err, "channelID", channelID)
			return
		}
		metrics.TicketsClosed.Inc()
	}()
}

// ensureCategory devuelve el ID de la categoría contenedora con ese
// nombre, creándola si todavía no existe.
func (c *TicketCommand) ensureCategory(s *discordgo.Session, guildID, name string) (string, error) {
	channels, err := s.GuildChannels(guildID)
	if err != nil {
		return "", err
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == name {
			return ch.ID, nil
		}
	}

	created, err := s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *TicketCommand) supportRoleIDs(s *discordgo.Session, guildID string) []string {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		c.Log.Error("no se pudieron leer los roles del servidor", "error", err, "guildID", guildID)
		return nil
	}
	return roleIDsByName(roles, c.Cfg.Tickets.SupportRoles)
}

func (c *TicketCommand) middlemanRoleIDs(s *discordgo.Session, guildID, tier string) []string {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		c.Log.Error("no se pudieron leer los roles del servidor", "error", err, "guildID", guildID)
		return nil
	}
	return middlemanStaffIDs(roles, c.Cfg.Tickets.ChiefRole, tier)
}

func (c *TicketCommand) editEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		c.Log.Error("no se pudo editar la respuesta diferida", "error", err)
	}
}

// roleIDsByName resuelve nombres de rol exactos a IDs, ignorando los
// que no existan en el servidor.
func roleIDsByName(roles []*discordgo.Role, names []string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		for _, role := range roles {
			if role.Name == name {
				ids = append(ids, role.ID)
				break
			}
		}
	}
	return ids
}

// middlemanStaffIDs arma el staff de un ticket de middleman: el rol jefe
// siempre, más los roles cuyo nombre contiene el tier pedido.
func middlemanStaffIDs(roles []*discordgo.Role, chiefName, tier string) []string {
	ids := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, role := range roles {
		if role.Name == chiefName || strings.Contains(role.Name, tier) {
			if !seen[role.ID] {
				seen[role.ID] = true
				ids = append(ids, role.ID)
			}
		}
	}
	return ids
}

// hasAllowedRole comprueba si alguno de los roles del miembro está en
// la lista de nombres permitidos.
func hasAllowedRole(memberRoleIDs []string, roles []*discordgo.Role, allowed []string) bool {
	allowedSet := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = true
	}
	byID := make(map[string]string, len(roles))
	for _, role := range roles {
		byID[role.ID] = role.Name
	}
	for _, id := range memberRoleIDs {
		if allowedSet[byID[id]] {
			return true
		}
	}
	return false
}

func (c *TicketCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate) {}

func (c *TicketCommand) GetComponentIDs() []string {
	return []string{ticketSupportMenuID, ticketMiddlemanMenuID, ticketClaimButtonID, ticketCloseButtonID}
}

func (c *TicketCommand) GetCategory() string { return "Tickets" }

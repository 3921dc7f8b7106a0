package commands

import (
	"fmt"
	"strings"

	"nexo/interfaces"
	"nexo/storage"

	"github.com/bwmarrin/discordgo"
)

// LeaderboardCommand muestra el TOP 10 de niveles del servidor.
type LeaderboardCommand struct {
	Store interfaces.DataStore
	Log   interfaces.Logger
}

func (c *LeaderboardCommand) GetCommandDef() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "TOP 10 de niveles",
	}
}

func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	entries := c.Store.Leaderboard(10)
	if len(entries) == 0 {
		respondText(s, i, "🏆 TOP 10\nTodavía no hay nadie en el ranking.")
		return
	}

	// La resolución de nombres pasa por la API; si falla para un usuario
	// concreto mostramos su mención en vez de romper todo el ranking.
	resolve := func(userID string) string {
		user, err := s.User(userID)
		if err != nil {
			c.Log.Warn("no se pudo resolver el usuario del leaderboard", "userID", userID, "error", err)
			return fmt.Sprintf("<@%s>", userID)
		}
		return user.Username
	}

	respondText(s, i, "🏆 TOP 10\n"+formatLeaderboard(entries, resolve))
}

// formatLeaderboard renderiza las filas del ranking con el nombre que
// devuelva el resolutor de usuarios.
func formatLeaderboard(entries []storage.LevelEntry, resolve func(userID string) string) string {
	var b strings.Builder
	for idx, entry := range entries {
		var medal string
		switch idx {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		default:
			medal = fmt.Sprintf("%2d.", idx+1)
		}
		b.WriteString(fmt.Sprintf("%s %s - Nivel %d\n", medal, resolve(entry.UserID), entry.Level))
	}
	return b.String()
}

func (c *LeaderboardCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
}
func (c *LeaderboardCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate) {}
func (c *LeaderboardCommand) GetComponentIDs() []string                                        { return []string{} }
func (c *LeaderboardCommand) GetCategory() string                                              { return "Niveles" }

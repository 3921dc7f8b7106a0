package interfaces

import (
	"context"
	"time"

	"nexo/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// Logger es la interfaz de logging usada por todos los componentes del bot.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
}

// DataStore define las operaciones sobre los almacenes persistentes
// (niveles, warns y tickets). Cada mutación reescribe el archivo JSON
// correspondiente en disco.
type DataStore interface {
	GetLevel(userID string) (level int, xp int)
	AddMessageXP(userID string) (leveledUp bool, newLevel int, err error)
	SetLevel(userID string, level int) error
	Leaderboard(n int) []storage.LevelEntry

	ResetWarns(userID string) error

	SetTicket(userID, channelID string) (previous string, err error)
	GetTicket(userID string) (channelID string, ok bool)
	TicketOwner(channelID string) (userID string, ok bool)
	DeleteTicket(userID string) error
}

// Scheduler define la funcionalidad de tareas periódicas (cron).
type Scheduler interface {
	Start()
	Stop() context.Context
	AddFunc(spec string, cmd func()) (cron.EntryID, error)
}

// UnmuteScheduler gestiona los trabajos de desmuteo automático: uno por
// (guild, usuario), cancelable desde /unmute.
type UnmuteScheduler interface {
	Schedule(guildID, userID string, d time.Duration, fn func())
	Cancel(guildID, userID string) bool
}

// CommandHandler es la interfaz que implementa cada comando del bot.
type CommandHandler interface {
	GetCommandDef() *discordgo.ApplicationCommand
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate)
	HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate)
	HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate)
	GetComponentIDs() []string
	GetCategory() string
}

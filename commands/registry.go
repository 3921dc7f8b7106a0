package commands

import (
	"nexo/config"
	"nexo/interfaces"
	"nexo/metrics"

	"github.com/bwmarrin/discordgo"
)

// AppContext provee las dependencias compartidas a los comandos.
type AppContext struct {
	Log     interfaces.Logger
	Store   interfaces.DataStore
	Unmutes interfaces.UnmuteScheduler
	Cfg     *config.Config
}

// RegisterCommands construye todos los handlers de comandos y los
// devuelve indexados por nombre de comando y por CustomID de componente.
func RegisterCommands(appCtx *AppContext) (map[string]interfaces.CommandHandler, map[string]interfaces.CommandHandler, []*discordgo.ApplicationCommand) {
	commandHandlers := make(map[string]interfaces.CommandHandler)
	componentHandlers := make(map[string]interfaces.CommandHandler)
	registeredCommands := make([]*discordgo.ApplicationCommand, 0)

	drops := NewDropRegistry()

	// Para añadir un comando nuevo basta con sumarlo a esta lista.
	commands := []interfaces.CommandHandler{
		&NivelCommand{Store: appCtx.Store},
		&LeaderboardCommand{Store: appCtx.Store, Log: appCtx.Log},
		&SetLevelCommand{Store: appCtx.Store, Log: appCtx.Log},
		&ResetWarnsCommand{Store: appCtx.Store, Log: appCtx.Log},
		&MuteCommand{Log: appCtx.Log, Unmutes: appCtx.Unmutes, Cfg: appCtx.Cfg},
		&UnmuteCommand{Log: appCtx.Log, Unmutes: appCtx.Unmutes, Cfg: appCtx.Cfg},
		&BanCommand{Log: appCtx.Log},
		&ClearCommand{Log: appCtx.Log},
		&LockCommand{Log: appCtx.Log},
		&UnlockCommand{Log: appCtx.Log},
		&SlowmodeCommand{Log: appCtx.Log},
		&SayCommand{Log: appCtx.Log},
		&EmbedCommand{Log: appCtx.Log},
		&MsgCommand{Log: appCtx.Log},
		&DropCommand{Log: appCtx.Log, Drops: drops},
		&DropsCommand{Drops: drops},
		&TicketCommand{Store: appCtx.Store, Log: appCtx.Log, Cfg: appCtx.Cfg},
	}

	for _, cmd := range commands {
		def := cmd.GetCommandDef()
		commandHandlers[def.Name] = &commandMetricsWrapper{CommandHandler: cmd}
		registeredCommands = append(registeredCommands, def)

		for _, id := range cmd.GetComponentIDs() {
			componentHandlers[id] = cmd
		}
	}

	return commandHandlers, componentHandlers, registeredCommands
}

// commandMetricsWrapper cuenta cada ejecución de comando en Prometheus
// antes de delegar en el handler real.
type commandMetricsWrapper struct {
	interfaces.CommandHandler
}

func (w *commandMetricsWrapper) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	metrics.CommandsHandled.WithLabelValues(w.GetCommandDef().Name).Inc()
	w.CommandHandler.Handle(s, i)
}

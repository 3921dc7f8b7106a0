package bot

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"nexo/commands"
	"nexo/config"
	"nexo/handlers"
	"nexo/interfaces"
	"nexo/scheduler"
	"nexo/servers"
	"nexo/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// Bot gestiona el estado y el ciclo de vida del bot de Discord.
type Bot struct {
	Session *discordgo.Session

	log     interfaces.Logger
	store   *storage.Store
	cron    *cron.Cron
	unmutes *scheduler.UnmuteJobs
	web     *servers.WebServer

	commandHandlers   map[string]interfaces.CommandHandler
	componentHandlers map[string]interfaces.CommandHandler
}

// New crea la sesión de Discord y el resto de dependencias del bot.
func New(log interfaces.Logger) (*Bot, error) {
	cfg := config.Cfg

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentGuildModeration

	store, err := storage.New(cfg.Data.Dir, cfg.Levels.XPPerMessage, cfg.Levels.ThresholdStep)
	if err != nil {
		return nil, err
	}

	return &Bot{
		Session:           dg,
		log:               log,
		store:             store,
		cron:              cron.New(),
		unmutes:           scheduler.NewUnmuteJobs(),
		web:               servers.NewWebServer(cfg.Web.Addr, log),
		commandHandlers:   make(map[string]interfaces.CommandHandler),
		componentHandlers: make(map[string]interfaces.CommandHandler),
	}, nil
}

// Start conecta con Discord, registra comandos y bloquea hasta recibir
// una señal de apagado.
func (b *Bot) Start() error {
	handlers.NewReadyHandler(b.log).Register(b.Session)
	handlers.NewMessageHandler(b.log, b.store, config.Cfg).Register(b.Session)
	handlers.NewMemberHandler(b.log, config.Cfg).Register(b.Session)

	appCtx := &commands.AppContext{
		Log:     b.log,
		Store:   b.store,
		Unmutes: b.unmutes,
		Cfg:     config.Cfg,
	}
	cmdHandlers, componentHandlers, registeredCommands := commands.RegisterCommands(appCtx)
	b.commandHandlers = cmdHandlers
	b.componentHandlers = componentHandlers

	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("conectando con Discord: %w", err)
	}
	defer b.Session.Close()

	b.web.Start()
	defer b.web.Stop()

	if _, err := b.cron.AddFunc("@every 10m", b.refreshPresence); err != nil {
		return err
	}
	b.cron.Start()
	defer b.cron.Stop()

	b.log.Info("registrando comandos slash", "total", len(registeredCommands))
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, "", registeredCommands); err != nil {
		return fmt.Errorf("registrando comandos: %w", err)
	}

	b.log.Info("bot en marcha, Ctrl+C para salir")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	b.log.Info("apagando el bot")
	return nil
}

// interactionCreate enruta cada interacción a su handler: comandos por
// nombre, componentes y modales por prefijo de CustomID.
func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Todos los comandos y componentes operan sobre un servidor.
	if i.Member == nil {
		return
	}
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commandHandlers[i.ApplicationCommandData().Name]; ok {
			h.Handle(s, i)
		}
	case discordgo.InteractionMessageComponent:
		for id, h := range b.componentHandlers {
			if strings.HasPrefix(i.MessageComponentData().CustomID, id) {
				h.HandleComponent(s, i)
				return
			}
		}
	case discordgo.InteractionModalSubmit:
		for id, h := range b.componentHandlers {
			if strings.HasPrefix(i.ModalSubmitData().CustomID, id) {
				h.HandleModal(s, i)
				return
			}
		}
	}
}

// refreshPresence actualiza el estado del bot con el nivel más alto del
// servidor, para que la presencia sirva de mini leaderboard.
func (b *Bot) refreshPresence() {
	status := "/nivel · /menu"
	if top := b.store.Leaderboard(1); len(top) > 0 {
		status = fmt.Sprintf("Nivel máximo: %d · /nivel", top[0].Level)
	}
	if err := b.Session.UpdateGameStatus(0, status); err != nil {
		b.log.Warn("no se pudo actualizar la presencia", "error", err)
	}
}

package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/board"
	"github.com/lichcore/dominion/internal/repository"
	"github.com/lichcore/dominion/internal/worker"
)

// Deps bundles the collaborators the command handlers work against.
type Deps struct {
	Assignments repository.Assignment
	Loadouts    repository.Loadout
	Boards      *board.Service
	Refresher   *board.Refresher
	Roster      *GuildRoster
	Timers      *worker.TimerWorker

	WelcomeChannelID string
	IncludePlate     bool
}

// requestAssignmentRefresh queues a coalesced rebuild of the profession board.
func (d *Deps) requestAssignmentRefresh() {
	d.Refresher.Request(board.BoardAssignment, d.Boards.RefreshAssignmentBoard)
}

// requestArmorRefresh queues a coalesced rebuild of the armor board.
func (d *Deps) requestArmorRefresh() {
	d.Refresher.Request(board.BoardArmor, d.Boards.RefreshArmorBoard)
}

// Bot represents the Discord bot
type Bot struct {
	Session    *discordgo.Session
	AppID      string
	GuildID    string
	Registry   *CommandRegistry
	Components *ComponentRegistry
	Deps       *Deps
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
}

// New creates a new Discord bot
func New(cfg Config, deps *Deps) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Member add/remove events require the privileged members intent.
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages

	return &Bot{
		Session:    s,
		AppID:      cfg.AppID,
		GuildID:    cfg.GuildID,
		Registry:   NewCommandRegistry(),
		Components: NewComponentRegistry(),
		Deps:       deps,
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.guildMemberAdd)
	b.Session.AddHandler(b.guildMemberRemove)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if b.Registry != nil {
			b.Registry.Handle(s, i, b.Deps)
		}
	case discordgo.InteractionMessageComponent:
		if b.Components != nil {
			b.Components.Handle(s, i, b.Deps)
		}
	}
}

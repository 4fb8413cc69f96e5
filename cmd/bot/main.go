package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lichcore/dominion/internal/board"
	"github.com/lichcore/dominion/internal/bootstrap"
	"github.com/lichcore/dominion/internal/concurrency"
	"github.com/lichcore/dominion/internal/config"
	"github.com/lichcore/dominion/internal/database"
	"github.com/lichcore/dominion/internal/discord"
	"github.com/lichcore/dominion/internal/scheduler"
	"github.com/lichcore/dominion/internal/server"
	"github.com/lichcore/dominion/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second

	poolWorkers   = 4
	poolQueueSize = 16

	dbMaxIdleTime = 5 * time.Minute
	dbMaxLifetime = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	// Discord session and its adapters.
	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.GuildID,
	}, nil)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	roster := discord.NewGuildRoster(bot.Session, cfg.GuildID)
	messenger := discord.NewChannelMessenger(bot.Session)

	// Board pipeline: reconciler syncs pages onto channels, service rebuilds
	// content, refresher coalesces refresh requests per board.
	reconciler := board.NewReconciler(repos.Meta, messenger)
	boards := board.NewService(repos.Assignment, repos.Loadout, reconciler, roster, board.Config{
		AssignmentChannelID: cfg.AssignmentChannelID,
		ArmorChannelID:      cfg.ArmorChannelID,
		IncludePlate:        cfg.IncludePlate,
		Offline:             cfg.Offline,
	})
	refresher := board.NewRefresher(concurrency.NewLockManager())

	timers := worker.NewTimerWorker(discord.TimerPing(bot.Session))

	bot.Deps = &discord.Deps{
		Assignments:      repos.Assignment,
		Loadouts:         repos.Loadout,
		Boards:           boards,
		Refresher:        refresher,
		Roster:           roster,
		Timers:           timers,
		WelcomeChannelID: cfg.WelcomeChannelID,
		IncludePlate:     cfg.IncludePlate,
	}
	bot.RegisterAll()

	// Ops server: health, readiness, version, metrics.
	srv := server.NewServer(cfg.Port, dbPool)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Ops server failed", "error", err)
		}
	}()

	// Periodic board sync catches drift from deleted messages or missed
	// refreshes. It goes through the refresher so a scheduled pass queues
	// behind any command-triggered refresh on the same board.
	pool := worker.NewPool(poolWorkers, poolQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.BoardSyncInterval, worker.JobFunc(func(context.Context) error {
		refresher.SyncBoards(boards)
		return nil
	}))

	if !cfg.Offline {
		if err := bot.Start(); err != nil {
			slog.Error("Bot failed to start", "error", err)
			os.Exit(1)
		}

		forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
		if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
			slog.Error("Failed to register commands", "error", err)
			// Don't exit - bot can still run if commands are already registered
		}
	} else {
		slog.Warn("Offline mode: Discord connection skipped")
	}

	waitForSignal()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if !cfg.Offline {
		bot.Stop()
	}
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:      srv,
		Scheduler:   sched,
		WorkerPool:  pool,
		TimerWorker: timers,
	})
}

// waitForSignal blocks until SIGINT or SIGTERM is received.
func waitForSignal() {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

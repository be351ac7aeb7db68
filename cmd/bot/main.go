package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/genvault/genvault/internal/bot"
	"github.com/genvault/genvault/internal/setup"
	"github.com/genvault/genvault/internal/web"
	giveawayworker "github.com/genvault/genvault/internal/worker/giveaway"
	presenceworker "github.com/genvault/genvault/internal/worker/presence"
)

const (
	// BotLogDir specifies where bot log files are stored.
	BotLogDir = "logs/bot_logs"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "genvault",
		Usage: "Discord bot distributing service accounts through redemption codes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory searched first for config.toml",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runBot(cmd.String("config-dir"))
		},
	}

	return app.Run(context.Background(), os.Args)
}

func runBot(configDir string) error {
	app, err := setup.InitializeApp(BotLogDir, configDir)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Cleanup()

	cfg := app.Config

	discordBot, err := bot.New(cfg.Bot.Token, cfg.Bot.GuildID, app.State, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	if err := discordBot.Start(); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}
	defer discordBot.Close()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	presence := presenceworker.New(
		discordBot.Client(),
		app.State,
		cfg.Bot.GuildID,
		time.Duration(cfg.Worker.PresenceSweepInterval)*time.Millisecond,
		app.LogManager.WorkerLogger("presence"),
	)
	go presence.Start(workerCtx)

	giveaway := giveawayworker.New(
		discordBot.Client(),
		app.State,
		time.Duration(cfg.Worker.GiveawayCheckInterval)*time.Millisecond,
		app.LogManager.WorkerLogger("giveaway"),
	)
	go giveaway.Start(workerCtx)

	var statusServer *web.Server
	if cfg.Web.Enabled {
		statusServer = web.New(cfg.Web.Port, discordBot, app.Logger)
		go statusServer.Start()
	}

	app.Logger.Info("Bot has been started, waiting for interrupt signal")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	cancelWorkers()

	if statusServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		statusServer.Shutdown(shutdownCtx)
		cancel()
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/config"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/discord"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/logger"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/queue"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/store"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/web"
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.Get()

	log.Info().Str("app", cfg.App.Name).Msg("Starting academy bot")

	// Initialize data store
	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to open data store")
	}

	// Initialize task queue
	tasks := queue.New(cfg.Poller.MaxAttempts)

	// Initialize Discord session
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages

	gateway := discord.NewClient(session, cfg.Discord.GuildID, cfg.Discord.RequestTimeout)
	commands := discord.NewCommands(session, gateway, st, cfg)

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("username", r.User.Username).Msg("Discord gateway connected")
		if err := commands.Register(); err != nil {
			log.Error().Err(err).Msg("Failed to register slash commands")
		}
	})

	// A dead gateway makes the whole bot useless, so this is the one
	// startup step that is allowed to kill the process.
	if err := session.Open(); err != nil {
		log.Fatal().Err(err).Msg("Failed to open Discord gateway")
	}
	defer session.Close()

	// Start the queue poller
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller := worker.NewPoller(cfg, tasks, st, gateway)
	go func() {
		if err := poller.Run(ctx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Poller stopped")
		}
	}()

	// Initialize dashboard handler
	handler := web.NewHandler(st, tasks, cfg)
	auth := web.NewAuth(cfg, web.NewIdentityClient(cfg))

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(web.LoggingMiddleware())
	router.Use(web.RecoveryMiddleware())

	// Setup routes
	web.SetupRoutes(router, handler, auth)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting dashboard server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")
	cancel()

	// Create context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Bot exited")
}

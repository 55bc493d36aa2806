package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"santabox/bot"
	"santabox/config"
	"santabox/database"
	"santabox/domain/events"
	"santabox/photostore"
	"santabox/repository"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting santabox bot...")

	cfg := config.Get()

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("Running database migrations...")
	if err := database.MigrateUp(); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	eventBus := events.NewBus()
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	photos, err := photostore.NewStore(cfg.PhotoDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize photo store: %w", err)
	}

	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{Token: cfg.DiscordToken}, uowFactory, eventBus, photos)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.WithField("environment", cfg.Environment).Info("Bot is running")
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}

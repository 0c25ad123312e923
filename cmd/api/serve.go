package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evandrarf/words7000-bot/database"
	"github.com/evandrarf/words7000-bot/internal/config"
	"github.com/evandrarf/words7000-bot/internal/pkg/validate"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig := config.NewViper()

		log := config.NewLogger(viperConfig)
		db, err := database.New(viperConfig, log)
		if err != nil {
			return err
		}
		validator := validate.NewValidator()
		api := config.NewAPI(viperConfig, log)

		if viperConfig.GetBool("database.auto_migrate") {
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info("Migrations completed successfully")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cleanup, err := config.Bootstrap(ctx, &config.BootstrapConfig{
			Config:    viperConfig,
			Log:       log,
			Api:       api,
			Validator: validator,
			DB:        db,
		})
		if err != nil {
			return err
		}
		defer cleanup()

		listenAddr := viperConfig.GetString("api.listen")

		go func() {
			if err := api.Listen(listenAddr); err != nil {
				log.Fatalf("Failed to start API server: %v", err)
			}
		}()

		<-ctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := api.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("API shutdown error: %v", err)
		}
		return nil
	},
}

package main

import (
	"github.com/evandrarf/words7000-bot/database"
	"github.com/evandrarf/words7000-bot/internal/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		viperConfig := config.NewViper()
		log := config.NewLogger(viperConfig)

		db, err := database.New(viperConfig, log)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("Migrations completed successfully")
		return nil
	},
}

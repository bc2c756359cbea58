package cmd

import (
	"fmt"
	"log"

	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/db"
	"github.com/matteomarino16/telegram-audio-bot/model"

	"github.com/spf13/cobra"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database schema",
	Long:  `Create the tracks, favorites and requests tables if they do not exist. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		initLogging(cfg)

		conn, err := db.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer conn.Close()

		if err := db.InitSchema(conn); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		gdb, err := db.ConnectGorm(cfg)
		if err != nil {
			log.Fatalf("Failed to connect with GORM: %v", err)
		}
		defer db.CloseGorm(gdb)

		if err := db.AutoMigrateModels(gdb, &model.TrackRequest{}); err != nil {
			log.Fatalf("Failed to migrate request model: %v", err)
		}

		fmt.Printf("Database initialized: %s\n", cfg.DBName)
	},
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}

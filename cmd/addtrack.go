package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/db"
	"github.com/matteomarino16/telegram-audio-bot/model"
	"github.com/matteomarino16/telegram-audio-bot/repository"

	"github.com/spf13/cobra"
)

var addtrackCmd = &cobra.Command{
	Use:   "addtrack <title> <file_id>",
	Short: "Insert a track into the library",
	Long:  `Insert a track directly, bypassing the bot. The file_id is the Telegram file identifier (copy it from the bot).`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.TrimSpace(args[0])
		fileID := strings.TrimSpace(args[1])
		if title == "" || fileID == "" {
			log.Fatal("Title and file_id are required")
		}

		cfg := config.Load()
		initLogging(cfg)

		conn, err := db.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer conn.Close()

		trackRepo := repository.NewMySQLTrackRepository(conn)
		id, err := trackRepo.CreateTrack(&model.Track{Title: title, FileID: fileID})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				log.Fatalf("A track with this file_id already exists")
			}
			log.Fatalf("Failed to insert track: %v", err)
		}

		fmt.Printf("Track added successfully: '%s' (id %d)\n", title, id)
	},
}

func init() {
	rootCmd.AddCommand(addtrackCmd)
}

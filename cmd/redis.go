package cmd

import (
	"fmt"
	"log"

	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/db"

	"github.com/spf13/cobra"
)

var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Test the Redis connection",
	Long:  `Check that Redis is reachable and that basic read/write operations work.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("Redis config: %s:%s, DB: %d\n", cfg.RedisHost, cfg.RedisPort, cfg.RedisDB)

		client, err := db.ConnectRedis(cfg)
		if err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		fmt.Println("Redis connection successful!")

		if err := db.TestRedis(client); err != nil {
			log.Fatalf("Redis operation test failed: %v", err)
		}
		fmt.Println("Redis basic operations test successful!")

		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(redisCmd)
}

package cmd

import (
	"time"

	"github.com/matteomarino16/telegram-audio-bot/cache"
	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/core/feed"
	"github.com/matteomarino16/telegram-audio-bot/db"
	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"
	"github.com/matteomarino16/telegram-audio-bot/repository"
	"github.com/matteomarino16/telegram-audio-bot/server"

	"github.com/spf13/cobra"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Run the companion web server alone",
	Long:  `Serve the read-only library page, the search API and the admin request dashboard without the bot.`,
	Run: func(cmd *cobra.Command, args []string) {
		runWeb()
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
}

func runWeb() {
	cfg := config.Load()
	initLogging(cfg)

	conn, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer conn.Close()

	if err := db.InitSchema(conn); err != nil {
		logger.Fatal("Failed to initialize database schema", logger.ErrorField(err))
	}

	gdb, err := db.ConnectGorm(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database with GORM", logger.ErrorField(err))
	}
	defer db.CloseGorm(gdb)

	if err := db.AutoMigrateModels(gdb, &model.TrackRequest{}); err != nil {
		logger.Fatal("Failed to migrate request model", logger.ErrorField(err))
	}

	var searchCache *cache.SearchCache
	if redisClient, err := db.ConnectRedis(cfg); err != nil {
		logger.Warn("Redis unavailable, web search cache disabled", logger.ErrorField(err))
	} else {
		defer redisClient.Close()
		searchCache = cache.NewSearchCache(redisClient, time.Duration(cfg.SearchCacheTTL)*time.Second)
	}

	trackRepo := repository.NewMySQLTrackRepository(conn)
	requestRepo := repository.NewGormRequestRepository(gdb)
	hub := feed.NewHub()

	webServer := server.New(cfg, trackRepo, requestRepo, searchCache, hub)
	if err := webServer.Start(); err != nil {
		logger.Fatal("Web server failed", logger.ErrorField(err))
	}
}

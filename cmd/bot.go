package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matteomarino16/telegram-audio-bot/cache"
	"github.com/matteomarino16/telegram-audio-bot/config"
	"github.com/matteomarino16/telegram-audio-bot/core/bot"
	"github.com/matteomarino16/telegram-audio-bot/core/feed"
	"github.com/matteomarino16/telegram-audio-bot/core/view"
	"github.com/matteomarino16/telegram-audio-bot/db"
	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"
	"github.com/matteomarino16/telegram-audio-bot/repository"
	"github.com/matteomarino16/telegram-audio-bot/server"
	"github.com/matteomarino16/telegram-audio-bot/telegram"

	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot alone",
	Long:  `Run the Telegram bot without the companion web server.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBot(false)
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}

// runBot starts the bot poller, optionally alongside the web server.
func runBot(withWeb bool) {
	cfg := config.Load()
	initLogging(cfg)

	if cfg.BotToken == "" {
		logger.Fatal("BOT_TOKEN is required")
	}

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

	trackRepo := repository.NewMySQLTrackRepository(conn)
	favoriteRepo := repository.NewMySQLFavoriteRepository(conn)
	requestRepo := repository.NewGormRequestRepository(gdb)
	renderer := view.NewRenderer(cfg.ShareURL)

	client := telegram.NewClient(cfg.BotToken)
	client.SetBaseURL(cfg.TelegramAPIURL)

	var publisher bot.RequestPublisher
	if withWeb {
		hub := feed.NewHub()
		publisher = hub

		var searchCache *cache.SearchCache
		if redisClient, err := db.ConnectRedis(cfg); err != nil {
			logger.Warn("Redis unavailable, web search cache disabled", logger.ErrorField(err))
		} else {
			defer redisClient.Close()
			searchCache = cache.NewSearchCache(redisClient, time.Duration(cfg.SearchCacheTTL)*time.Second)
		}

		webServer := server.New(cfg, trackRepo, requestRepo, searchCache, hub)
		go func() {
			if err := webServer.Start(); err != nil {
				logger.Error("Web server stopped", logger.ErrorField(err))
			}
		}()
	}

	router := bot.NewRouter(trackRepo, favoriteRepo, requestRepo, renderer, client, publisher, cfg.PageSize)
	poller := telegram.NewPoller(client, router, cfg.PollTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Bot polling stopped", logger.ErrorField(err))
	}
	logger.Info("Bot stopped")
}

// initLogging configures the global logger from config.
func initLogging(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})
}

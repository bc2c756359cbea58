package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
type Config struct {
	BotToken       string // Telegram bot token, required for the bot command
	TelegramAPIURL string // Base URL of the Telegram Bot API
	PollTimeout    int    // Long-poll timeout in seconds for getUpdates
	PageSize       int    // Number of tracks per page in list/favorites views
	ShareURL       string // URL attached to the share button

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis, used by the web search cache
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Companion web server
	HTTPAddr          string
	SearchCacheTTL    int    // Seconds, web search result cache
	AdminPasswordHash string // bcrypt hash of the admin dashboard password
	JWTSecret         string

	LogLevel string
	LogPath  string
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	return &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		TelegramAPIURL: getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		PollTimeout:    getEnvInt("POLL_TIMEOUT", 50),
		PageSize:       getEnvInt("PAGE_SIZE", 5),
		ShareURL:       getEnv("SHARE_URL", "https://t.me/share/url?url=https://t.me/musicfr44bot&text=Listen%20and%20download%20music%20with%20this%20bot!"),

		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"), // no hardcoded default for passwords
		DBName:     getEnv("DB_NAME", "tracks"),

		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		SearchCacheTTL:    getEnvInt("SEARCH_CACHE_TTL", 60),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogPath:  getEnv("LOG_PATH", ""),
	}
}

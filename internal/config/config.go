package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int
	LogLevel string
	LogDir   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DiscordToken string
	DiscordAppID string
	GuildID      string

	AssignmentChannelID string
	ArmorChannelID      string
	WelcomeChannelID    string

	// Offline suppresses all outbound Discord traffic; commands still
	// mutate the database.
	Offline bool
	// IncludePlate renders the Plate column on the armor board.
	IncludePlate bool

	// BoardSyncInterval is how often the scheduler reconciles both boards
	// regardless of command activity.
	BoardSyncInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		LogDir:              getEnv("LOG_DIR", "logs"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "dominion"),
		DiscordToken:        getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:        getEnv("DISCORD_APP_ID", ""),
		GuildID:             getEnv("DISCORD_GUILD_ID", ""),
		AssignmentChannelID: getEnv("ASSIGNMENT_CHANNEL_ID", ""),
		ArmorChannelID:      getEnv("ARMOR_CHANNEL_ID", ""),
		WelcomeChannelID:    getEnv("WELCOME_CHANNEL_ID", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	offline, err := getEnvBool("OFFLINE_MODE", false)
	if err != nil {
		return nil, err
	}
	cfg.Offline = offline

	includePlate, err := getEnvBool("BOARD_INCLUDE_PLATE", false)
	if err != nil {
		return nil, err
	}
	cfg.IncludePlate = includePlate

	intervalStr := getEnv("BOARD_SYNC_INTERVAL", DefaultBoardSyncInterval)
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BOARD_SYNC_INTERVAL value: %w", err)
	}
	cfg.BoardSyncInterval = interval

	if cfg.DiscordToken == "" && !cfg.Offline {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable must be set unless OFFLINE_MODE is enabled")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

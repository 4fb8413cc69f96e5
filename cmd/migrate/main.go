package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/lichcore/dominion/internal/database"
)

// Applies or inspects database migrations without starting the bot.
// Usage: migrate [up|down|status]
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "dominion"),
	)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := database.Migrate(connString); err != nil {
			slog.Error("Migrations failed", "error", err)
			os.Exit(1)
		}
	case "down":
		if err := database.MigrateDown(connString); err != nil {
			slog.Error("Rollback failed", "error", err)
			os.Exit(1)
		}
	case "status":
		if err := database.MigrationStatus(connString); err != nil {
			slog.Error("Migration status failed", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Unknown command", "command", command)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

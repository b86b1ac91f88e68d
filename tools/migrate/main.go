package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	_ "github.com/orgball2608/tumblr-likes-archiver/internal/migrations"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/pressly/goose/v3"
)

// Go migrations live in internal/migrations and register themselves on import.
const migrationsDir = "."

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	if len(os.Args) < 2 {
		fail(log, "Usage: migrate [up|down|status|reset|create <name>]", nil)
	}
	command := os.Args[1]

	if command == "create" {
		if len(os.Args) < 3 {
			fail(log, "Usage: migrate create <name>", nil)
		}
		if err := goose.Create(nil, "internal/migrations", os.Args[2], "go"); err != nil {
			fail(log, "Failed to create migration", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail(log, "Failed to load config", err)
	}
	if cfg.Postgres.Host == "" {
		fail(log, "POSTGRES_HOST is required", nil)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		fail(log, "Failed to set dialect", err)
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		fail(log, "Failed to connect to database", err)
	}
	defer db.Close()

	switch command {
	case "up":
		err = goose.Up(db, migrationsDir)
	case "down":
		err = goose.Down(db, migrationsDir)
	case "status":
		err = goose.Status(db, migrationsDir)
	case "reset":
		err = goose.Reset(db, migrationsDir)
	default:
		fail(log, fmt.Sprintf("Unknown command: %s", command), nil)
	}
	if err != nil {
		fail(log, "Migration command failed", err, "command", command)
	}
	log.Info("Migration command finished", "command", command)
}

func fail(log logger.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	log.Error(msg, args...)
	os.Exit(1)
}

// Applies SQL migrations from ./migrations against DATABASE_URL.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		slog.Error("migrate init failed", "err", err)
		os.Exit(1)
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		slog.Error("unknown direction", "direction", direction)
		os.Exit(1)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		slog.Error("migration failed", "direction", direction, "err", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "direction", direction)
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"

	"github.com/lsafer/sudoku-server/internal/config"
	"github.com/lsafer/sudoku-server/internal/database"
	"github.com/lsafer/sudoku-server/migrations"
)

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(tint.NewHandler(os.Stderr, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_, migrator, err := database.ConnectAndMigrate(ctx, migrations.FS)
	if err != nil {
		logger.Error("failed to connect to db", slog.Any("error", err))
		os.Exit(1)
	}
	version, dirty, err := migrator.Version()
	if err != nil {
		logger.Error("failed to check migration version", slog.Any("error", err))
	} else {
		logger.Info("migration successful", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}
	os.Exit(0)
}

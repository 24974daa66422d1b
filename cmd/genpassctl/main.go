package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	sqliteadapter "github.com/ericfisherdev/genpass/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/genpass/internal/adapter/driving/cli"
	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/config"
)

func main() {
	if err := run(); err != nil {
		// Cobra has already printed command errors.
		os.Exit(1)
	}
}

func run() error {
	// Diagnostics stay silent unless --verbose lowers the level.
	level := new(slog.LevelVar)
	level.Set(slog.LevelError + 4)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	sealer, err := sqliteadapter.NewSealer(cfg.SecretKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	settingsStore := sqliteadapter.NewSettingsRepo(db)

	rnd := application.NewRandom(nil)
	svc := application.NewCredentialService(
		application.NewResultStore(
			application.NewUsernameGenerator(rnd, nil),
			application.NewPasswordGenerator(rnd),
			cfg.MaxHistory,
		),
		sqliteadapter.NewHistoryRepo(db, sealer),
		sqliteadapter.NewFavoriteRepo(db, sealer),
		settingsStore,
		settingsStore,
		cfg.DefaultSettings(),
		logger,
	)

	root := cli.NewRootCmd(cli.Deps{Service: svc, LogLevel: level})
	return root.ExecuteContext(ctx)
}

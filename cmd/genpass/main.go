package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sqliteadapter "github.com/ericfisherdev/genpass/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/genpass/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/genpass/internal/adapter/driving/web"
	"github.com/ericfisherdev/genpass/internal/application"
	"github.com/ericfisherdev/genpass/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"max_history", cfg.MaxHistory,
		"encryption", cfg.HasSecretKey(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", db.Path())

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	schemaVersion, err := sqliteadapter.SchemaVersion(db.Writer)
	if err != nil {
		return err
	}
	slog.Info("migrations complete", "schema_version", schemaVersion)

	// 5. Wire adapters.
	sealer, err := sqliteadapter.NewSealer(cfg.SecretKey)
	if err != nil {
		return err
	}
	historyStore := sqliteadapter.NewHistoryRepo(db, sealer)
	favoriteStore := sqliteadapter.NewFavoriteRepo(db, sealer)
	settingsStore := sqliteadapter.NewSettingsRepo(db)

	// 6. Create the generators and the credential service, then restore state.
	rnd := application.NewRandom(nil)
	resultStore := application.NewResultStore(
		application.NewUsernameGenerator(rnd, nil),
		application.NewPasswordGenerator(rnd),
		cfg.MaxHistory,
	)
	credentialSvc := application.NewCredentialService(
		resultStore,
		historyStore,
		favoriteStore,
		settingsStore,
		settingsStore,
		cfg.DefaultSettings(),
		slog.Default(),
	)
	if err := credentialSvc.Load(ctx); err != nil {
		return err
	}

	// 7. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(credentialSvc, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 8. Create web handler and register GUI routes.
	webHandler := webhandler.NewHandler(credentialSvc, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	slog.Info("genpass started", "listen_addr", cfg.ListenAddr)

	// 9. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		return err
	}

	// 10. Graceful shutdown with 10s timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

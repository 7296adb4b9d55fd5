package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"daybook/internal/classifier"
	"daybook/internal/config"
	"daybook/internal/handler"
	"daybook/internal/repository/sqlite"
	"daybook/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	moods := classifier.NewGemini(cfg.Classifier.APIKey,
		classifier.WithModel(cfg.Classifier.Model),
		classifier.WithBaseURL(cfg.Classifier.BaseURL),
		classifier.WithTimeout(cfg.Classifier.Timeout),
	)

	authService := service.NewAuthService(db.Users(), cfg.Auth.JWTSecret, cfg.Auth.BcryptCost)
	journalService := service.NewJournalService(db.Entries(), moods)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, journalService, cfg.Auth.CookieSecure)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.SecurityHeaders(handler.CORS(cfg.CORS.AllowedOrigins, mux)),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

package main

import (
	"context"
	"ctchen222/user-auth/internal/api/controller"
	"ctchen222/user-auth/internal/api/repository"
	"ctchen222/user-auth/internal/api/service"
	"ctchen222/user-auth/internal/auth"
	"ctchen222/user-auth/internal/config"
	"ctchen222/user-auth/internal/db"
	"ctchen222/user-auth/internal/events"
	"ctchen222/user-auth/internal/logger"
	"ctchen222/user-auth/internal/server"
	"ctchen222/user-auth/internal/telemetry"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	if err := run(ctx, cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// Initialize SQLite DB
	DB, err := db.Connect(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer DB.Close()
	if err := db.InitializeDB(ctx, DB); err != nil {
		return err
	}

	// Initialize Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Create repositories
	userRepo := repository.NewUserRepository(DB)
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL, auth.NewTokenStore(rdb))
	publisher := events.NewRedisPublisher(rdb)

	// Create services
	userService, err := service.NewUserService(userRepo, tokens, publisher)
	if err != nil {
		return err
	}

	// Create controllers
	userController := controller.NewUserController(userService)

	srv := server.NewServer(userController, server.Options{
		RequestTimeout: cfg.RequestTimeout,
		HealthChecks: map[string]server.HealthCheck{
			"sqlite": DB.PingContext,
			"redis":  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	})

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", "http.addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exiting")
	return nil
}

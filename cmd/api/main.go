package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adcraft/backend/internal/config"
	"github.com/adcraft/backend/internal/db"
	"github.com/adcraft/backend/internal/events"
	"github.com/adcraft/backend/internal/generation"
	apphttp "github.com/adcraft/backend/internal/http"
	"github.com/adcraft/backend/internal/http/dto"
	"github.com/adcraft/backend/internal/http/handlers"
	"github.com/adcraft/backend/internal/middleware"
	"github.com/adcraft/backend/internal/repositories"
	"github.com/adcraft/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, os.DirFS("migrations"), log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Generation
	provider, err := generation.NewGeminiProvider(ctx, cfg.GeminiAPIKey, log)
	if err != nil {
		log.Fatal("failed to create gemini provider", zap.Error(err))
	}
	client := generation.NewClient(provider, cfg.GeminiModel, cfg.GeminiTimeout, log)

	// Services
	generationService := services.NewGenerationService(client, auditRepo, cfg.GeminiModel, log)
	sessionService := services.NewSessionService(generationService, publisher, cfg.SessionTTL, log)
	sessionService.StartSweeper(ctx, time.Minute)

	// Handlers
	pageHandler, err := handlers.NewPageHandler(log)
	if err != nil {
		log.Fatal("failed to load templates", zap.Error(err))
	}
	metaHandler := handlers.NewMetaHandler()
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.SessionSecret, cfg.SessionTTL, log)
	generateHandler := handlers.NewGenerateHandler(generationService, log)
	wsHub := handlers.NewWSHub(cfg.SessionSecret, subscriber, sessionService.Get, log)

	// Start WS hub
	if err := wsHub.Start(ctx); err != nil {
		log.Fatal("failed to subscribe to session events", zap.Error(err))
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error(), RequestID: middleware.GetRequestID(c)})
		},
	})

	apphttp.SetupRouter(app, cfg, log, middleware.NewRedisCounter(rdb), pageHandler, metaHandler, sessionHandler, generateHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		_ = app.Shutdown()
		sessionService.Wait()
		cancel()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr), zap.String("model", cfg.GeminiModel))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

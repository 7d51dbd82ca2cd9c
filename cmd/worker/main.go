package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adcraft/backend/internal/config"
	"github.com/adcraft/backend/internal/db"
	"github.com/adcraft/backend/internal/metrics"
	"github.com/adcraft/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	auditRepo := repositories.NewAuditRepo(pool)

	// Health and metrics
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	go func() {
		if err := app.Listen(fmt.Sprintf(":%s", cfg.WorkerPort)); err != nil {
			log.Error("worker http server stopped", zap.Error(err))
		}
	}()

	log.Info("worker started",
		zap.Duration("retention", cfg.AuditRetention),
		zap.Duration("interval", cfg.AuditPurgeInterval),
	)

	// Run once on start, then on the ticker
	runAuditPurge(ctx, auditRepo, cfg.AuditRetention, log)

	purgeTicker := time.NewTicker(cfg.AuditPurgeInterval)
	defer purgeTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-purgeTicker.C:
			runAuditPurge(ctx, auditRepo, cfg.AuditRetention, log)
		case <-sigCh:
			log.Info("shutting down worker")
			_ = app.Shutdown()
			cancel()
			return
		}
	}
}

type auditPurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

func runAuditPurge(ctx context.Context, repo auditPurger, retention time.Duration, log *zap.Logger) {
	if retention <= 0 {
		return
	}

	cutoff := time.Now().Add(-retention)
	n, err := repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		log.Error("audit purge failed", zap.Error(err))
		return
	}
	metrics.AuditRowsPurged.Add(float64(n))
	if n > 0 {
		log.Info("purged generation audit rows", zap.Int64("rows", n), zap.Time("cutoff", cutoff))
	}
}

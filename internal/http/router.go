package http

import (
	"time"

	"github.com/adcraft/backend/internal/config"
	"github.com/adcraft/backend/internal/http/handlers"
	"github.com/adcraft/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	counter middleware.Counter,
	pageHandler *handlers.PageHandler,
	metaHandler *handlers.MetaHandler,
	sessionHandler *handlers.SessionHandler,
	generateHandler *handlers.GenerateHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders: "Content-Disposition, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Form page
	app.Get("/", pageHandler.Index)

	api := app.Group("/api/v1")

	// Public
	api.Get("/meta/options", metaHandler.GetOptions)
	api.Get("/stats/generations", generateHandler.Stats)
	api.Get("/stats/generations/recent", generateHandler.Recent)
	api.Post("/sessions", sessionHandler.CreateSession)

	generateLimit := middleware.RateLimitMiddleware(counter, "generate", cfg.GenerateRateLimit, time.Minute, log)
	api.Post("/generate", generateLimit, generateHandler.Generate)

	// Session-scoped
	session := api.Group("/session", middleware.SessionAuthMiddleware(cfg.SessionSecret, log))
	session.Get("", sessionHandler.GetSession)
	session.Patch("/form", sessionHandler.UpdateForm)
	session.Post("/submit", generateLimit, sessionHandler.Submit)
	session.Get("/results/:index/copy", sessionHandler.CopyResult)
	session.Get("/export", sessionHandler.Export)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}

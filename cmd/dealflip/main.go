package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"dealflip/internal/ai"
	"dealflip/internal/config"
	"dealflip/internal/http/handlers"
	applog "dealflip/internal/log"
	"dealflip/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	llm, err := ai.NewGeminiCompleter(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal(err)
	}
	applog.Startup("ai.provider.ready", map[string]any{"model": cfg.GeminiModel})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": "Internal server error"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, llm)
	api := app.Group("/api")

	// Auth (login throttled)
	api.Get("/auth/user", deps.AuthHandler.Current)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)

	// Deals
	api.Get("/deals", deps.DealHandler.List)
	api.Get("/deals/user/:userId", deps.DealHandler.ListByUser)
	api.Post("/deals", deps.DealHandler.Create)
	api.Get("/deals/:id", deps.DealHandler.Get)
	api.Patch("/deals/:id", deps.DealHandler.Patch)
	api.Delete("/deals/:id", deps.DealHandler.Delete)

	// Inventory
	api.Get("/inventory/user/:userId", deps.InventoryHandler.ListByUser)
	api.Post("/inventory", deps.InventoryHandler.Create)
	api.Get("/inventory/:id", deps.InventoryHandler.Get)
	api.Patch("/inventory/:id", deps.InventoryHandler.Patch)
	api.Delete("/inventory/:id", deps.InventoryHandler.Delete)

	// Sales
	api.Get("/sales/user/:userId", deps.SalesHandler.ListByUser)
	api.Post("/sales", deps.SalesHandler.Create)
	api.Get("/sales/:id", deps.SalesHandler.Get)
	api.Delete("/sales/:id", deps.SalesHandler.Delete)

	// Competitor prices
	api.Get("/competitor-prices/user/:userId", deps.CompetitorHandler.ListByUser)
	api.Get("/competitor-prices/deal/:dealId", deps.CompetitorHandler.ListByDeal)
	api.Post("/competitor-prices", deps.CompetitorHandler.Create)
	api.Patch("/competitor-prices/:id", deps.CompetitorHandler.Patch)
	api.Delete("/competitor-prices/:id", deps.CompetitorHandler.Delete)

	// Deal alerts
	api.Get("/alerts/user/:userId", deps.AlertHandler.ListByUser)
	api.Post("/alerts", deps.AlertHandler.Create)
	api.Get("/alerts/:id", deps.AlertHandler.Get)
	api.Patch("/alerts/:id", deps.AlertHandler.Patch)
	api.Delete("/alerts/:id", deps.AlertHandler.Delete)

	// Notifications
	api.Get("/notifications/user/:userId", deps.NotificationHandler.ListByUser)
	api.Post("/notifications", deps.NotificationHandler.Create)
	api.Patch("/notifications/:id/read", deps.NotificationHandler.MarkRead)
	api.Patch("/notifications/:id", deps.NotificationHandler.Patch)
	api.Delete("/notifications/:id", deps.NotificationHandler.Delete)

	// Listing templates
	api.Get("/listing-templates/user/:userId", deps.TemplateHandler.ListByUser)
	api.Post("/listing-templates", deps.TemplateHandler.Create)
	api.Patch("/listing-templates/:id", deps.TemplateHandler.Patch)
	api.Delete("/listing-templates/:id", deps.TemplateHandler.Delete)

	// Generated listings
	api.Get("/listings/user/:userId", deps.ListingHandler.ListByUser)
	api.Post("/listings", deps.ListingHandler.Create)
	api.Patch("/listings/:id", deps.ListingHandler.Patch)
	api.Delete("/listings/:id", deps.ListingHandler.Delete)

	// Sourcing settings
	api.Get("/sourcing-settings/user/:userId", deps.SourcingHandler.Get)
	api.Put("/sourcing-settings/user/:userId", deps.SourcingHandler.Put)

	// Reporting
	api.Get("/stats/user/:userId", deps.ReportingHandler.Stats)
	api.Get("/market-insights", deps.ReportingHandler.MarketInsights)
	api.Get("/price-history/:productId", deps.ReportingHandler.PriceHistory)

	// AI gateway (throttled harder than CRUD)
	aiLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|ai"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.ai.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "rate limit exceeded, retry soon"})
		},
	})
	api.Post("/ai/analyze-deal", aiLimiter, deps.AIHandler.AnalyzeDeal)
	api.Post("/ai/market-insights", aiLimiter, deps.AIHandler.MarketInsights)
	api.Post("/ai/price-prediction", aiLimiter, deps.AIHandler.PredictPriceTrend)
	api.Post("/ai/generate-listing", aiLimiter, deps.AIHandler.GenerateListing)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

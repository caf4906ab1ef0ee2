package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dealflip/internal/ai"
	"dealflip/internal/http/handlers"
	"dealflip/internal/repos"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Complete(_ context.Context, _ string, _ float32) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// newTestApp wires the full route table against an in-memory database with
// the standard demo seed.
func newTestApp(t *testing.T, llm ai.Completer) (*fiber.App, *sqlx.DB) {
	t.Helper()
	if llm == nil {
		llm = &stubLLM{reply: "{}"}
	}
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	app := fiber.New()
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, llm)
	api := app.Group("/api")

	api.Get("/auth/user", deps.AuthHandler.Current)
	api.Post("/auth/login", deps.AuthHandler.Login)

	api.Get("/deals", deps.DealHandler.List)
	api.Get("/deals/user/:userId", deps.DealHandler.ListByUser)
	api.Post("/deals", deps.DealHandler.Create)
	api.Get("/deals/:id", deps.DealHandler.Get)
	api.Patch("/deals/:id", deps.DealHandler.Patch)
	api.Delete("/deals/:id", deps.DealHandler.Delete)

	api.Get("/inventory/user/:userId", deps.InventoryHandler.ListByUser)
	api.Post("/inventory", deps.InventoryHandler.Create)
	api.Get("/inventory/:id", deps.InventoryHandler.Get)
	api.Patch("/inventory/:id", deps.InventoryHandler.Patch)
	api.Delete("/inventory/:id", deps.InventoryHandler.Delete)

	api.Get("/sales/user/:userId", deps.SalesHandler.ListByUser)
	api.Post("/sales", deps.SalesHandler.Create)
	api.Get("/sales/:id", deps.SalesHandler.Get)
	api.Delete("/sales/:id", deps.SalesHandler.Delete)

	api.Get("/competitor-prices/user/:userId", deps.CompetitorHandler.ListByUser)
	api.Get("/competitor-prices/deal/:dealId", deps.CompetitorHandler.ListByDeal)
	api.Post("/competitor-prices", deps.CompetitorHandler.Create)
	api.Patch("/competitor-prices/:id", deps.CompetitorHandler.Patch)
	api.Delete("/competitor-prices/:id", deps.CompetitorHandler.Delete)

	api.Get("/alerts/user/:userId", deps.AlertHandler.ListByUser)
	api.Post("/alerts", deps.AlertHandler.Create)
	api.Get("/alerts/:id", deps.AlertHandler.Get)
	api.Patch("/alerts/:id", deps.AlertHandler.Patch)
	api.Delete("/alerts/:id", deps.AlertHandler.Delete)

	api.Get("/notifications/user/:userId", deps.NotificationHandler.ListByUser)
	api.Post("/notifications", deps.NotificationHandler.Create)
	api.Patch("/notifications/:id/read", deps.NotificationHandler.MarkRead)
	api.Patch("/notifications/:id", deps.NotificationHandler.Patch)
	api.Delete("/notifications/:id", deps.NotificationHandler.Delete)

	api.Get("/listing-templates/user/:userId", deps.TemplateHandler.ListByUser)
	api.Post("/listing-templates", deps.TemplateHandler.Create)
	api.Patch("/listing-templates/:id", deps.TemplateHandler.Patch)
	api.Delete("/listing-templates/:id", deps.TemplateHandler.Delete)

	api.Get("/listings/user/:userId", deps.ListingHandler.ListByUser)
	api.Post("/listings", deps.ListingHandler.Create)
	api.Patch("/listings/:id", deps.ListingHandler.Patch)
	api.Delete("/listings/:id", deps.ListingHandler.Delete)

	api.Get("/sourcing-settings/user/:userId", deps.SourcingHandler.Get)
	api.Put("/sourcing-settings/user/:userId", deps.SourcingHandler.Put)

	api.Get("/stats/user/:userId", deps.ReportingHandler.Stats)
	api.Get("/market-insights", deps.ReportingHandler.MarketInsights)
	api.Get("/price-history/:productId", deps.ReportingHandler.PriceHistory)

	api.Post("/ai/analyze-deal", deps.AIHandler.AnalyzeDeal)
	api.Post("/ai/market-insights", deps.AIHandler.MarketInsights)
	api.Post("/ai/price-prediction", deps.AIHandler.PredictPriceTrend)
	api.Post("/ai/generate-listing", deps.AIHandler.GenerateListing)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

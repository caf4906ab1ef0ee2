package handlers

import (
	"github.com/gofiber/fiber/v2"

	"dealflip/internal/ai"
	applog "dealflip/internal/log"
	"dealflip/internal/validate"
)

type AIHandler struct {
	Gateway *ai.Gateway
}

// aiError reports a provider or parse failure. Unlike serverError the reply
// carries the underlying message so callers can distinguish quota errors
// from malformed output.
func aiError(c *fiber.Ctx, action, msg string, err error) error {
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": msg,
		"details": err.Error(),
	})
}

func (h *AIHandler) AnalyzeDeal(c *fiber.Ctx) error {
	var body ai.DealAnalysisInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.Title == "" || !validate.PositivePrice(body.CurrentPrice) {
		return badRequest(c, "Title and current price are required")
	}
	analysis, err := h.Gateway.AnalyzeDeal(c.UserContext(), body)
	if err != nil {
		return aiError(c, "ai.analyze_deal", "Failed to analyze deal", err)
	}
	applog.Info(c, "ai.analyze_deal", map[string]any{"title": body.Title})
	return c.JSON(analysis)
}

func (h *AIHandler) PredictPriceTrend(c *fiber.Ctx) error {
	var body ai.PricePredictionInput
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.Title == "" || !validate.PositivePrice(body.CurrentPrice) {
		return badRequest(c, "Title and current price are required")
	}
	prediction, err := h.Gateway.PredictPriceTrend(c.UserContext(), body)
	if err != nil {
		return aiError(c, "ai.price_prediction", "Failed to predict price trend", err)
	}
	applog.Info(c, "ai.price_prediction", map[string]any{"title": body.Title})
	return c.JSON(prediction)
}

func (h *AIHandler) MarketInsights(c *fiber.Ctx) error {
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	insights, err := h.Gateway.GenerateMarketInsights(c.UserContext(), body.Categories)
	if err != nil {
		return aiError(c, "ai.market_insights", "Failed to generate market insights", err)
	}
	applog.Info(c, "ai.market_insights", map[string]any{"count": len(insights)})
	return c.JSON(insights)
}

func (h *AIHandler) GenerateListing(c *fiber.Ctx) error {
	var body struct {
		Item     ai.ListingItemInput `json:"item"`
		Platform string              `json:"platform"`
		Template string              `json:"template"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.Item.Title == "" || body.Platform == "" {
		return badRequest(c, "Item title and platform are required")
	}
	listing, err := h.Gateway.GenerateListing(c.UserContext(), body.Item, body.Platform, body.Template)
	if err != nil {
		return aiError(c, "ai.generate_listing", "Failed to generate listing", err)
	}
	applog.Info(c, "ai.generate_listing", map[string]any{
		"item":     body.Item.Title,
		"platform": body.Platform,
	})
	return c.JSON(listing)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"dealflip/internal/repos"
	"dealflip/internal/validate"
)

type ReportingHandler struct {
	Reports *repos.ReportingRepo
}

func (h *ReportingHandler) Stats(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	stats, err := h.Reports.StatsByUser(userID)
	if err != nil {
		return serverError(c, "stats.list_user", err)
	}
	return c.JSON(stats)
}

func (h *ReportingHandler) MarketInsights(c *fiber.Ctx) error {
	insights, err := h.Reports.MarketInsights()
	if err != nil {
		return serverError(c, "market_insights.list", err)
	}
	return c.JSON(insights)
}

func (h *ReportingHandler) PriceHistory(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "Invalid product ID")
	}
	history, err := h.Reports.PriceHistory(productID)
	if err != nil {
		return serverError(c, "price_history.list", err)
	}
	return c.JSON(history)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dealflip/internal/domain"
	applog "dealflip/internal/log"
	"dealflip/internal/repos"
	"dealflip/internal/services"
	"dealflip/internal/validate"
)

type CompetitorHandler struct {
	Prices *repos.CompetitorRepo
	Auth   *services.AuthService
}

type competitorCreateReq struct {
	UserID       string  `json:"userId"`
	DealID       string  `json:"dealId"`
	ProductTitle string  `json:"productTitle"`
	Platform     string  `json:"platform"`
	Price        float64 `json:"price"`
	URL          string  `json:"url"`
	ObservedAt   string  `json:"observedAt"`
}

type competitorPatchReq struct {
	DealID       *string  `json:"dealId"`
	ProductTitle *string  `json:"productTitle"`
	Platform     *string  `json:"platform"`
	Price        *float64 `json:"price"`
	URL          *string  `json:"url"`
	ObservedAt   *string  `json:"observedAt"`
}

func (h *CompetitorHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	prices, err := h.Prices.ListByUser(userID)
	if err != nil {
		return serverError(c, "competitor.list_user", err)
	}
	return c.JSON(prices)
}

func (h *CompetitorHandler) ListByDeal(c *fiber.Ctx) error {
	dealID, ok := validate.ID(c.Params("dealId"))
	if !ok {
		return badRequest(c, "Invalid deal ID")
	}
	prices, err := h.Prices.ListByDeal(dealID)
	if err != nil {
		return serverError(c, "competitor.list_deal", err)
	}
	return c.JSON(prices)
}

func (h *CompetitorHandler) Create(c *fiber.Ctx) error {
	var body competitorCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	platform, ok := validate.Name(body.Platform)
	if !ok {
		return badRequest(c, "Platform is required")
	}
	if !validate.Price(body.Price) {
		return badRequest(c, "Price must be non-negative")
	}
	userID := body.UserID
	if userID == "" {
		u, err := h.Auth.Principal()
		if err != nil {
			return serverError(c, "competitor.create.principal", err)
		}
		userID = u.ID
	}

	cp := &domain.CompetitorPrice{
		ID:           uuid.NewString(),
		UserID:       userID,
		DealID:       body.DealID,
		ProductTitle: body.ProductTitle,
		Platform:     platform,
		Price:        body.Price,
		URL:          body.URL,
		ObservedAt:   body.ObservedAt,
	}
	if err := h.Prices.Create(cp); err != nil {
		return serverError(c, "competitor.create", err)
	}
	created, err := h.Prices.Get(cp.ID)
	if err != nil {
		return serverError(c, "competitor.create.readback", err)
	}
	applog.Audit(c, "competitor.create", map[string]any{"price_id": cp.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CompetitorHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid price ID")
	}
	cp, err := h.Prices.Get(id)
	if err != nil {
		return repoError(c, "competitor.patch", "Competitor price not found", err)
	}
	var patch competitorPatchReq
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if patch.Platform != nil {
		platform, ok := validate.Name(*patch.Platform)
		if !ok {
			return badRequest(c, "Platform is required")
		}
		cp.Platform = platform
	}
	if patch.Price != nil {
		if !validate.Price(*patch.Price) {
			return badRequest(c, "Price must be non-negative")
		}
		cp.Price = *patch.Price
	}
	if patch.DealID != nil {
		cp.DealID = *patch.DealID
	}
	if patch.ProductTitle != nil {
		cp.ProductTitle = *patch.ProductTitle
	}
	if patch.URL != nil {
		cp.URL = *patch.URL
	}
	if patch.ObservedAt != nil {
		cp.ObservedAt = *patch.ObservedAt
	}

	if err := h.Prices.Update(cp); err != nil {
		return serverError(c, "competitor.patch", err)
	}
	updated, err := h.Prices.Get(id)
	if err != nil {
		return serverError(c, "competitor.patch.readback", err)
	}
	applog.Audit(c, "competitor.patch", map[string]any{"price_id": id})
	return c.JSON(updated)
}

func (h *CompetitorHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid price ID")
	}
	gone, err := h.Prices.Delete(id)
	if err != nil {
		return serverError(c, "competitor.delete", err)
	}
	if !gone {
		return notFound(c, "Competitor price not found")
	}
	applog.Audit(c, "competitor.delete", map[string]any{"price_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

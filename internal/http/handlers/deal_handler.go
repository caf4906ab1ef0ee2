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

type DealHandler struct {
	Deals *repos.DealRepo
	Auth  *services.AuthService
}

type dealCreateReq struct {
	UserID           string  `json:"userId"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Source           string  `json:"source"`
	PostedTime       string  `json:"postedTime"`
	ImageURL         string  `json:"imageUrl"`
	OriginalPrice    float64 `json:"originalPrice"`
	CurrentPrice     float64 `json:"currentPrice"`
	EstimatedProfit  float64 `json:"estimatedProfit"`
	Condition        string  `json:"condition"`
	SellTimeEstimate string  `json:"sellTimeEstimate"`
	Demand           string  `json:"demand"`
	MatchScore       int     `json:"matchScore"`
	IsHotDeal        bool    `json:"isHotDeal"`
	Status           string  `json:"status"`
	AvgResellLow     float64 `json:"avgResellLow"`
	AvgResellHigh    float64 `json:"avgResellHigh"`
}

type dealPatchReq struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Source           *string  `json:"source"`
	PostedTime       *string  `json:"postedTime"`
	ImageURL         *string  `json:"imageUrl"`
	OriginalPrice    *float64 `json:"originalPrice"`
	CurrentPrice     *float64 `json:"currentPrice"`
	EstimatedProfit  *float64 `json:"estimatedProfit"`
	Condition        *string  `json:"condition"`
	SellTimeEstimate *string  `json:"sellTimeEstimate"`
	Demand           *string  `json:"demand"`
	MatchScore       *int     `json:"matchScore"`
	IsHotDeal        *bool    `json:"isHotDeal"`
	Status           *string  `json:"status"`
	AvgResellLow     *float64 `json:"avgResellLow"`
	AvgResellHigh    *float64 `json:"avgResellHigh"`
}

func (h *DealHandler) List(c *fiber.Ctx) error {
	deals, err := h.Deals.ListAll()
	if err != nil {
		return serverError(c, "deals.list", err)
	}
	return c.JSON(deals)
}

func (h *DealHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	deals, err := h.Deals.ListByUser(userID)
	if err != nil {
		return serverError(c, "deals.list_user", err)
	}
	return c.JSON(deals)
}

func (h *DealHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid deal ID")
	}
	deal, err := h.Deals.Get(id)
	if err != nil {
		return repoError(c, "deals.get", "Deal not found", err)
	}
	return c.JSON(deal)
}

func (h *DealHandler) Create(c *fiber.Ctx) error {
	var body dealCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	title, ok := validate.Title(body.Title)
	if !ok {
		return badRequest(c, "Title is required")
	}
	if !validate.Price(body.OriginalPrice) || !validate.Price(body.CurrentPrice) {
		return badRequest(c, "Prices must be non-negative")
	}
	status := body.Status
	if status == "" {
		status = "active"
	}
	if _, ok := validate.DealStatus(status); !ok {
		return badRequest(c, "Invalid deal status")
	}
	userID := body.UserID
	if userID == "" {
		u, err := h.Auth.Principal()
		if err != nil {
			return serverError(c, "deals.create.principal", err)
		}
		userID = u.ID
	}

	deal := &domain.Deal{
		ID:               uuid.NewString(),
		UserID:           userID,
		Title:            title,
		Description:      body.Description,
		Source:           body.Source,
		PostedTime:       body.PostedTime,
		ImageURL:         body.ImageURL,
		OriginalPrice:    body.OriginalPrice,
		CurrentPrice:     body.CurrentPrice,
		EstimatedProfit:  body.EstimatedProfit,
		Condition:        body.Condition,
		SellTimeEstimate: body.SellTimeEstimate,
		Demand:           body.Demand,
		MatchScore:       validate.Score(body.MatchScore),
		IsHotDeal:        body.IsHotDeal,
		Status:           status,
		AvgResellLow:     body.AvgResellLow,
		AvgResellHigh:    body.AvgResellHigh,
	}
	if err := h.Deals.Create(deal); err != nil {
		return serverError(c, "deals.create", err)
	}
	created, err := h.Deals.Get(deal.ID)
	if err != nil {
		return serverError(c, "deals.create.readback", err)
	}
	applog.Audit(c, "deals.create", map[string]any{"deal_id": deal.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *DealHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid deal ID")
	}
	deal, err := h.Deals.Get(id)
	if err != nil {
		return repoError(c, "deals.patch", "Deal not found", err)
	}
	var patch dealPatchReq
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if patch.Title != nil {
		title, ok := validate.Title(*patch.Title)
		if !ok {
			return badRequest(c, "Title is required")
		}
		deal.Title = title
	}
	if patch.Status != nil {
		status, ok := validate.DealStatus(*patch.Status)
		if !ok {
			return badRequest(c, "Invalid deal status")
		}
		deal.Status = status
	}
	if patch.Description != nil {
		deal.Description = *patch.Description
	}
	if patch.Source != nil {
		deal.Source = *patch.Source
	}
	if patch.PostedTime != nil {
		deal.PostedTime = *patch.PostedTime
	}
	if patch.ImageURL != nil {
		deal.ImageURL = *patch.ImageURL
	}
	if patch.OriginalPrice != nil {
		deal.OriginalPrice = *patch.OriginalPrice
	}
	if patch.CurrentPrice != nil {
		deal.CurrentPrice = *patch.CurrentPrice
	}
	if patch.EstimatedProfit != nil {
		deal.EstimatedProfit = *patch.EstimatedProfit
	}
	if patch.Condition != nil {
		deal.Condition = *patch.Condition
	}
	if patch.SellTimeEstimate != nil {
		deal.SellTimeEstimate = *patch.SellTimeEstimate
	}
	if patch.Demand != nil {
		deal.Demand = *patch.Demand
	}
	if patch.MatchScore != nil {
		deal.MatchScore = validate.Score(*patch.MatchScore)
	}
	if patch.IsHotDeal != nil {
		deal.IsHotDeal = *patch.IsHotDeal
	}
	if patch.AvgResellLow != nil {
		deal.AvgResellLow = *patch.AvgResellLow
	}
	if patch.AvgResellHigh != nil {
		deal.AvgResellHigh = *patch.AvgResellHigh
	}

	if err := h.Deals.Update(deal); err != nil {
		return serverError(c, "deals.patch", err)
	}
	updated, err := h.Deals.Get(id)
	if err != nil {
		return serverError(c, "deals.patch.readback", err)
	}
	applog.Audit(c, "deals.patch", map[string]any{"deal_id": id})
	return c.JSON(updated)
}

func (h *DealHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid deal ID")
	}
	gone, err := h.Deals.Delete(id)
	if err != nil {
		return serverError(c, "deals.delete", err)
	}
	if !gone {
		return notFound(c, "Deal not found")
	}
	applog.Audit(c, "deals.delete", map[string]any{"deal_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

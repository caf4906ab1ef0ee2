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

type ListingHandler struct {
	Listings *repos.ListingRepo
	Auth     *services.AuthService
}

type listingCreateReq struct {
	UserID          string   `json:"userId"`
	InventoryItemID string   `json:"inventoryItemId"`
	Platform        string   `json:"platform"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SuggestedPrice  float64  `json:"suggestedPrice"`
	Tags            []string `json:"tags"`
	Published       bool     `json:"published"`
}

type listingPatchReq struct {
	InventoryItemID *string   `json:"inventoryItemId"`
	Platform        *string   `json:"platform"`
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	SuggestedPrice  *float64  `json:"suggestedPrice"`
	Tags            *[]string `json:"tags"`
	Published       *bool     `json:"published"`
}

func (h *ListingHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	listings, err := h.Listings.ListByUser(userID)
	if err != nil {
		return serverError(c, "listings.list_user", err)
	}
	return c.JSON(listings)
}

func (h *ListingHandler) Create(c *fiber.Ctx) error {
	var body listingCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	title, ok := validate.Title(body.Title)
	if !ok {
		return badRequest(c, "Title is required")
	}
	platform, ok := validate.Name(body.Platform)
	if !ok {
		return badRequest(c, "Platform is required")
	}
	userID := body.UserID
	if userID == "" {
		u, err := h.Auth.Principal()
		if err != nil {
			return serverError(c, "listings.create.principal", err)
		}
		userID = u.ID
	}

	l := &domain.GeneratedListing{
		ID:              uuid.NewString(),
		UserID:          userID,
		InventoryItemID: body.InventoryItemID,
		Platform:        platform,
		Title:           title,
		Description:     body.Description,
		SuggestedPrice:  body.SuggestedPrice,
		Tags:            body.Tags,
		Published:       body.Published,
	}
	if err := h.Listings.Create(l); err != nil {
		return serverError(c, "listings.create", err)
	}
	created, err := h.Listings.Get(l.ID)
	if err != nil {
		return serverError(c, "listings.create.readback", err)
	}
	applog.Audit(c, "listings.create", map[string]any{"listing_id": l.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ListingHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid listing ID")
	}
	l, err := h.Listings.Get(id)
	if err != nil {
		return repoError(c, "listings.patch", "Listing not found", err)
	}
	var patch listingPatchReq
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if patch.Title != nil {
		title, ok := validate.Title(*patch.Title)
		if !ok {
			return badRequest(c, "Title is required")
		}
		l.Title = title
	}
	if patch.Platform != nil {
		platform, ok := validate.Name(*patch.Platform)
		if !ok {
			return badRequest(c, "Platform is required")
		}
		l.Platform = platform
	}
	if patch.InventoryItemID != nil {
		l.InventoryItemID = *patch.InventoryItemID
	}
	if patch.Description != nil {
		l.Description = *patch.Description
	}
	if patch.SuggestedPrice != nil {
		l.SuggestedPrice = *patch.SuggestedPrice
	}
	if patch.Tags != nil {
		l.Tags = *patch.Tags
	}
	if patch.Published != nil {
		l.Published = *patch.Published
	}

	if err := h.Listings.Update(l); err != nil {
		return serverError(c, "listings.patch", err)
	}
	updated, err := h.Listings.Get(id)
	if err != nil {
		return serverError(c, "listings.patch.readback", err)
	}
	applog.Audit(c, "listings.patch", map[string]any{"listing_id": id})
	return c.JSON(updated)
}

func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid listing ID")
	}
	gone, err := h.Listings.Delete(id)
	if err != nil {
		return serverError(c, "listings.delete", err)
	}
	if !gone {
		return notFound(c, "Listing not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

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

type InventoryHandler struct {
	Inv  *repos.InventoryRepo
	Auth *services.AuthService
}

type inventoryCreateReq struct {
	UserID         string   `json:"userId"`
	DealID         string   `json:"dealId"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	PurchasePrice  float64  `json:"purchasePrice"`
	PurchaseDate   string   `json:"purchaseDate"`
	EstimatedValue float64  `json:"estimatedValue"`
	Condition      string   `json:"condition"`
	Status         string   `json:"status"`
	Tags           []string `json:"tags"`
}

type inventoryPatchReq struct {
	DealID         *string   `json:"dealId"`
	Title          *string   `json:"title"`
	Category       *string   `json:"category"`
	PurchasePrice  *float64  `json:"purchasePrice"`
	PurchaseDate   *string   `json:"purchaseDate"`
	EstimatedValue *float64  `json:"estimatedValue"`
	Condition      *string   `json:"condition"`
	Status         *string   `json:"status"`
	Tags           *[]string `json:"tags"`
}

func (h *InventoryHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	items, err := h.Inv.ListByUser(userID)
	if err != nil {
		return serverError(c, "inventory.list_user", err)
	}
	return c.JSON(items)
}

func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid item ID")
	}
	item, err := h.Inv.Get(id)
	if err != nil {
		return repoError(c, "inventory.get", "Inventory item not found", err)
	}
	return c.JSON(item)
}

func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var body inventoryCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	title, ok := validate.Title(body.Title)
	if !ok {
		return badRequest(c, "Title is required")
	}
	category, ok := validate.Name(body.Category)
	if !ok {
		return badRequest(c, "Category is required")
	}
	if !validate.Price(body.PurchasePrice) {
		return badRequest(c, "Purchase price must be non-negative")
	}
	status := body.Status
	if status == "" {
		status = "in_inventory"
	}
	if _, ok := validate.ItemStatus(status); !ok {
		return badRequest(c, "Invalid inventory status")
	}
	userID := body.UserID
	if userID == "" {
		u, err := h.Auth.Principal()
		if err != nil {
			return serverError(c, "inventory.create.principal", err)
		}
		userID = u.ID
	}

	item := &domain.InventoryItem{
		ID:             uuid.NewString(),
		UserID:         userID,
		DealID:         body.DealID,
		Title:          title,
		Category:       category,
		PurchasePrice:  body.PurchasePrice,
		PurchaseDate:   body.PurchaseDate,
		EstimatedValue: body.EstimatedValue,
		Condition:      body.Condition,
		Status:         status,
		Tags:           body.Tags,
	}
	if err := h.Inv.Create(item); err != nil {
		return serverError(c, "inventory.create", err)
	}
	created, err := h.Inv.Get(item.ID)
	if err != nil {
		return serverError(c, "inventory.create.readback", err)
	}
	applog.Audit(c, "inventory.create", map[string]any{"item_id": item.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *InventoryHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid item ID")
	}
	item, err := h.Inv.Get(id)
	if err != nil {
		return repoError(c, "inventory.patch", "Inventory item not found", err)
	}
	var patch inventoryPatchReq
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if patch.Title != nil {
		title, ok := validate.Title(*patch.Title)
		if !ok {
			return badRequest(c, "Title is required")
		}
		item.Title = title
	}
	if patch.Category != nil {
		category, ok := validate.Name(*patch.Category)
		if !ok {
			return badRequest(c, "Category is required")
		}
		item.Category = category
	}
	if patch.Status != nil {
		status, ok := validate.ItemStatus(*patch.Status)
		if !ok {
			return badRequest(c, "Invalid inventory status")
		}
		item.Status = status
	}
	if patch.DealID != nil {
		item.DealID = *patch.DealID
	}
	if patch.PurchasePrice != nil {
		item.PurchasePrice = *patch.PurchasePrice
	}
	if patch.PurchaseDate != nil {
		item.PurchaseDate = *patch.PurchaseDate
	}
	if patch.EstimatedValue != nil {
		item.EstimatedValue = *patch.EstimatedValue
	}
	if patch.Condition != nil {
		item.Condition = *patch.Condition
	}
	if patch.Tags != nil {
		item.Tags = *patch.Tags
	}

	if err := h.Inv.Update(item); err != nil {
		return serverError(c, "inventory.patch", err)
	}
	updated, err := h.Inv.Get(id)
	if err != nil {
		return serverError(c, "inventory.patch.readback", err)
	}
	applog.Audit(c, "inventory.patch", map[string]any{"item_id": id})
	return c.JSON(updated)
}

func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid item ID")
	}
	gone, err := h.Inv.Delete(id)
	if err != nil {
		return serverError(c, "inventory.delete", err)
	}
	if !gone {
		return notFound(c, "Inventory item not found")
	}
	applog.Audit(c, "inventory.delete", map[string]any{"item_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dealflip/internal/domain"
	applog "dealflip/internal/log"
	"dealflip/internal/repos"
	"dealflip/internal/services"
	"dealflip/internal/validate"
)

type SalesHandler struct {
	Sales *repos.SalesRepo
	Svc   *services.SalesService
}

type saleCreateReq struct {
	UserID          string   `json:"userId"`
	InventoryItemID string   `json:"inventoryItemId"`
	Platform        string   `json:"platform"`
	SalePrice       float64  `json:"salePrice"`
	Fees            float64  `json:"fees"`
	ShippingCost    float64  `json:"shippingCost"`
	Profit          *float64 `json:"profit"`
	SoldAt          string   `json:"soldAt"`
}

func (h *SalesHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	sales, err := h.Sales.ListByUser(userID)
	if err != nil {
		return serverError(c, "sales.list_user", err)
	}
	return c.JSON(sales)
}

func (h *SalesHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid sale ID")
	}
	sale, err := h.Sales.Get(id)
	if err != nil {
		return repoError(c, "sales.get", "Sales record not found", err)
	}
	return c.JSON(sale)
}

// Create records a sale and flips the linked inventory item to sold in one
// transaction.
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var body saleCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	itemID, ok := validate.ID(body.InventoryItemID)
	if !ok {
		return badRequest(c, "Inventory item ID is required")
	}
	if !validate.PositivePrice(body.SalePrice) {
		return badRequest(c, "Sale price is required")
	}
	if body.Fees < 0 || body.ShippingCost < 0 {
		return badRequest(c, "Fees and shipping cost must be non-negative")
	}

	rec, err := h.Svc.Record(&domain.SalesRecord{
		UserID:          body.UserID,
		InventoryItemID: itemID,
		Platform:        body.Platform,
		SalePrice:       body.SalePrice,
		Fees:            body.Fees,
		ShippingCost:    body.ShippingCost,
		SoldAt:          body.SoldAt,
	}, body.Profit)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return notFound(c, "Inventory item not found")
		}
		return serverError(c, "sales.create", err)
	}
	applog.Audit(c, "sales.create", map[string]any{"sale_id": rec.ID, "item_id": itemID, "profit": rec.Profit})
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid sale ID")
	}
	gone, err := h.Sales.Delete(id)
	if err != nil {
		return serverError(c, "sales.delete", err)
	}
	if !gone {
		return notFound(c, "Sales record not found")
	}
	applog.Audit(c, "sales.delete", map[string]any{"sale_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

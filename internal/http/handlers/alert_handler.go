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

// AlertHandler manages saved deal searches. They are configuration only:
// no scanner consumes them.
type AlertHandler struct {
	Alerts *repos.AlertRepo
	Auth   *services.AuthService
}

type alertCreateReq struct {
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords"`
	MinPrice    float64  `json:"minPrice"`
	MaxPrice    float64  `json:"maxPrice"`
	Condition   string   `json:"condition"`
	Sources     []string `json:"sources"`
	NotifyEmail bool     `json:"notifyEmail"`
	NotifyPush  bool     `json:"notifyPush"`
	Enabled     *bool    `json:"enabled"`
}

type alertPatchReq struct {
	Name        *string   `json:"name"`
	Keywords    *[]string `json:"keywords"`
	MinPrice    *float64  `json:"minPrice"`
	MaxPrice    *float64  `json:"maxPrice"`
	Condition   *string   `json:"condition"`
	Sources     *[]string `json:"sources"`
	NotifyEmail *bool     `json:"notifyEmail"`
	NotifyPush  *bool     `json:"notifyPush"`
	Enabled     *bool     `json:"enabled"`
}

func (h *AlertHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	alerts, err := h.Alerts.ListByUser(userID)
	if err != nil {
		return serverError(c, "alerts.list_user", err)
	}
	return c.JSON(alerts)
}

func (h *AlertHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid alert ID")
	}
	alert, err := h.Alerts.Get(id)
	if err != nil {
		return repoError(c, "alerts.get", "Alert not found", err)
	}
	return c.JSON(alert)
}

func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var body alertCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		return badRequest(c, "Name is required")
	}
	if body.MinPrice < 0 || body.MaxPrice < 0 {
		return badRequest(c, "Price bounds must be non-negative")
	}
	if body.MaxPrice > 0 && body.MinPrice > body.MaxPrice {
		return badRequest(c, "minPrice must not exceed maxPrice")
	}
	userID := body.UserID
	if userID == "" {
		u, err := h.Auth.Principal()
		if err != nil {
			return serverError(c, "alerts.create.principal", err)
		}
		userID = u.ID
	}
	enabled := true
	if body.Enabled != nil {
		enabled = *body.Enabled
	}

	alert := &domain.DealAlert{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Keywords:    body.Keywords,
		MinPrice:    body.MinPrice,
		MaxPrice:    body.MaxPrice,
		Condition:   body.Condition,
		Sources:     body.Sources,
		NotifyEmail: body.NotifyEmail,
		NotifyPush:  body.NotifyPush,
		Enabled:     enabled,
	}
	if err := h.Alerts.Create(alert); err != nil {
		return serverError(c, "alerts.create", err)
	}
	created, err := h.Alerts.Get(alert.ID)
	if err != nil {
		return serverError(c, "alerts.create.readback", err)
	}
	applog.Audit(c, "alerts.create", map[string]any{"alert_id": alert.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AlertHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid alert ID")
	}
	alert, err := h.Alerts.Get(id)
	if err != nil {
		return repoError(c, "alerts.patch", "Alert not found", err)
	}
	var patch alertPatchReq
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if patch.Name != nil {
		name, ok := validate.Name(*patch.Name)
		if !ok {
			return badRequest(c, "Name is required")
		}
		alert.Name = name
	}
	if patch.Keywords != nil {
		alert.Keywords = *patch.Keywords
	}
	if patch.MinPrice != nil {
		alert.MinPrice = *patch.MinPrice
	}
	if patch.MaxPrice != nil {
		alert.MaxPrice = *patch.MaxPrice
	}
	if patch.Condition != nil {
		alert.Condition = *patch.Condition
	}
	if patch.Sources != nil {
		alert.Sources = *patch.Sources
	}
	if patch.NotifyEmail != nil {
		alert.NotifyEmail = *patch.NotifyEmail
	}
	if patch.NotifyPush != nil {
		alert.NotifyPush = *patch.NotifyPush
	}
	if patch.Enabled != nil {
		alert.Enabled = *patch.Enabled
	}

	if err := h.Alerts.Update(alert); err != nil {
		return serverError(c, "alerts.patch", err)
	}
	updated, err := h.Alerts.Get(id)
	if err != nil {
		return serverError(c, "alerts.patch.readback", err)
	}
	applog.Audit(c, "alerts.patch", map[string]any{"alert_id": id})
	return c.JSON(updated)
}

func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid alert ID")
	}
	gone, err := h.Alerts.Delete(id)
	if err != nil {
		return serverError(c, "alerts.delete", err)
	}
	if !gone {
		return notFound(c, "Alert not found")
	}
	applog.Audit(c, "alerts.delete", map[string]any{"alert_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dealflip/internal/domain"
	applog "dealflip/internal/log"
	"dealflip/internal/repos"
	"dealflip/internal/services"
	"dealflip/internal/validate"
)

type NotificationHandler struct {
	Notifications *repos.NotificationRepo
	Auth          *services.AuthService
}

type notificationCreateReq struct {
	UserID  string          `json:"userId"`
	Title   string          `json:"title"`
	Body    string          `json:"body"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type notificationPatchReq struct {
	Title   *string          `json:"title"`
	Body    *string          `json:"body"`
	Type    *string          `json:"type"`
	Read    *bool            `json:"read"`
	Payload *json.RawMessage `json:"payload"`
}

func (h *NotificationHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	notifs, err := h.Notifications.ListByUser(userID)
	if err != nil {
		return serverError(c, "notifications.list_user", err)
	}
	return c.JSON(notifs)
}

func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var body notificationCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	title, ok := validate.Title(body.Title)
	if !ok {
		return badRequest(c, "Title is required")
	}
	userID := body.UserID
	if userID == "" {
		u, err := h.Auth.Principal()
		if err != nil {
			return serverError(c, "notifications.create.principal", err)
		}
		userID = u.ID
	}

	n := &domain.Notification{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Body:        body.Body,
		Type:        body.Type,
		PayloadJSON: string(body.Payload),
	}
	if err := h.Notifications.Create(n); err != nil {
		return serverError(c, "notifications.create", err)
	}
	created, err := h.Notifications.Get(n.ID)
	if err != nil {
		return serverError(c, "notifications.create.readback", err)
	}
	applog.Audit(c, "notifications.create", map[string]any{"notification_id": n.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// MarkRead flips only the read flag.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid notification ID")
	}
	done, err := h.Notifications.MarkRead(id)
	if err != nil {
		return serverError(c, "notifications.mark_read", err)
	}
	if !done {
		return notFound(c, "Notification not found")
	}
	n, err := h.Notifications.Get(id)
	if err != nil {
		return serverError(c, "notifications.mark_read.readback", err)
	}
	return c.JSON(n)
}

func (h *NotificationHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid notification ID")
	}
	n, err := h.Notifications.Get(id)
	if err != nil {
		return repoError(c, "notifications.patch", "Notification not found", err)
	}
	var patch notificationPatchReq
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if patch.Title != nil {
		title, ok := validate.Title(*patch.Title)
		if !ok {
			return badRequest(c, "Title is required")
		}
		n.Title = title
	}
	if patch.Body != nil {
		n.Body = *patch.Body
	}
	if patch.Type != nil {
		n.Type = *patch.Type
	}
	if patch.Read != nil {
		n.Read = *patch.Read
	}
	if patch.Payload != nil {
		n.PayloadJSON = string(*patch.Payload)
	}

	if err := h.Notifications.Update(n); err != nil {
		return serverError(c, "notifications.patch", err)
	}
	updated, err := h.Notifications.Get(id)
	if err != nil {
		return serverError(c, "notifications.patch.readback", err)
	}
	return c.JSON(updated)
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid notification ID")
	}
	gone, err := h.Notifications.Delete(id)
	if err != nil {
		return serverError(c, "notifications.delete", err)
	}
	if !gone {
		return notFound(c, "Notification not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

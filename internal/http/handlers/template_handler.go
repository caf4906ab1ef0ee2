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

type TemplateHandler struct {
	Templates *repos.TemplateRepo
	Auth      *services.AuthService
}

type templateCreateReq struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
}

type templatePatchReq struct {
	Name     *string `json:"name"`
	Platform *string `json:"platform"`
	Content  *string `json:"content"`
}

func (h *TemplateHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	templates, err := h.Templates.ListByUser(userID)
	if err != nil {
		return serverError(c, "templates.list_user", err)
	}
	return c.JSON(templates)
}

func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var body templateCreateReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		return badRequest(c, "Name is required")
	}
	if body.Content == "" {
		return badRequest(c, "Content is required")
	}
	userID := body.UserID
	if userID == "" {
		u, err := h.Auth.Principal()
		if err != nil {
			return serverError(c, "templates.create.principal", err)
		}
		userID = u.ID
	}

	t := &domain.ListingTemplate{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Platform: body.Platform,
		Content:  body.Content,
	}
	if err := h.Templates.Create(t); err != nil {
		return serverError(c, "templates.create", err)
	}
	created, err := h.Templates.Get(t.ID)
	if err != nil {
		return serverError(c, "templates.create.readback", err)
	}
	applog.Audit(c, "templates.create", map[string]any{"template_id": t.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TemplateHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid template ID")
	}
	t, err := h.Templates.Get(id)
	if err != nil {
		return repoError(c, "templates.patch", "Template not found", err)
	}
	var patch templatePatchReq
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if patch.Name != nil {
		name, ok := validate.Name(*patch.Name)
		if !ok {
			return badRequest(c, "Name is required")
		}
		t.Name = name
	}
	if patch.Platform != nil {
		t.Platform = *patch.Platform
	}
	if patch.Content != nil {
		if *patch.Content == "" {
			return badRequest(c, "Content is required")
		}
		t.Content = *patch.Content
	}

	if err := h.Templates.Update(t); err != nil {
		return serverError(c, "templates.patch", err)
	}
	updated, err := h.Templates.Get(id)
	if err != nil {
		return serverError(c, "templates.patch.readback", err)
	}
	return c.JSON(updated)
}

func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "Invalid template ID")
	}
	gone, err := h.Templates.Delete(id)
	if err != nil {
		return serverError(c, "templates.delete", err)
	}
	if !gone {
		return notFound(c, "Template not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

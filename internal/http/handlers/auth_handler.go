package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "dealflip/internal/log"
	"dealflip/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// Current returns the acting principal with the password hash stripped (the
// User json tags already hide it).
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	u, err := h.Auth.Principal()
	if err != nil {
		return repoError(c, "auth.user", "User not found", err)
	}
	return c.JSON(u)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.Username == "" || body.Password == "" {
		return badRequest(c, "Username and password are required")
	}
	u, err := h.Auth.Verify(body.Username, body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"username": body.Username})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
	}
	applog.Audit(c, "auth.login", map[string]any{"user_id": u.ID})
	return c.JSON(u)
}

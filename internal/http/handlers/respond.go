package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "dealflip/internal/log"
)

func badRequest(c *fiber.Ctx, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"message": msg})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

func serverError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}

// repoError maps a repo read failure: missing row -> 404, anything else -> 500.
func repoError(c *fiber.Ctx, action, missing string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, missing)
	}
	return serverError(c, action, err)
}

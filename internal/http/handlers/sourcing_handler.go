package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"dealflip/internal/domain"
	applog "dealflip/internal/log"
	"dealflip/internal/repos"
	"dealflip/internal/validate"
)

// SourcingHandler stores per-user scan preferences. Configuration only:
// no scanner consumes them.
type SourcingHandler struct {
	Settings *repos.SourcingRepo
}

type sourcingPutReq struct {
	Categories    []string `json:"categories"`
	MinProfit     float64  `json:"minProfit"`
	MinMatchScore int      `json:"minMatchScore"`
	Sources       []string `json:"sources"`
	AutoAnalyze   bool     `json:"autoAnalyze"`
}

// Get returns defaults rather than 404 when the user never saved settings.
func (h *SourcingHandler) Get(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	s, err := h.Settings.ByUser(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(domain.SourcingSetting{
				UserID:     userID,
				Categories: []string{},
				Sources:    []string{},
			})
		}
		return serverError(c, "sourcing.get", err)
	}
	return c.JSON(s)
}

func (h *SourcingHandler) Put(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return badRequest(c, "Invalid user ID")
	}
	var body sourcingPutReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if body.MinProfit < 0 {
		return badRequest(c, "minProfit must be non-negative")
	}

	s := &domain.SourcingSetting{
		UserID:        userID,
		Categories:    body.Categories,
		MinProfit:     body.MinProfit,
		MinMatchScore: validate.Score(body.MinMatchScore),
		Sources:       body.Sources,
		AutoAnalyze:   body.AutoAnalyze,
	}
	if err := h.Settings.Upsert(s); err != nil {
		return serverError(c, "sourcing.put", err)
	}
	saved, err := h.Settings.ByUser(userID)
	if err != nil {
		return serverError(c, "sourcing.put.readback", err)
	}
	applog.Audit(c, "sourcing.put", map[string]any{"user_id": userID})
	return c.JSON(saved)
}

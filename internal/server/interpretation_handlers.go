package server

import (
	"net/url"

	"mirrortime/internal/models"
	"mirrortime/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetInterpretation handles GET /api/interpretations/:time
// The time parameter arrives URL-encoded ("12%3A12"); locale via ?lang=.
func (s *Server) GetInterpretation(c *fiber.Ctx) error {
	timeStr, err := url.PathUnescape(c.Params("time"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid time parameter"))
	}
	if err := validation.ValidateTime(timeStr); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	locale := c.Query("lang", "en")
	result := s.resolver.Resolve(c.UserContext(), timeStr, locale)
	return c.JSON(result)
}

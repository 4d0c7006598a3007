package server

import (
	"errors"

	"mirrortime/internal/models"
	"mirrortime/internal/service"
	"mirrortime/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Analyze handles POST /api/analyze
func (s *Server) Analyze(c *fiber.Ctx) error {
	var req struct {
		Time     string `json:"time"`
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Time == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing required field: time"))
	}
	if err := validation.ValidateTime(req.Time); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	analysis, err := s.analysisService.Analyze(c.UserContext(), service.AnalyzeInput{
		Time:     req.Time,
		Message:  req.Message,
		Language: req.Language,
	})
	if err != nil {
		var unavailable *service.ErrAnalysisUnavailable
		if errors.As(err, &unavailable) {
			return models.RespondWithError(c, fiber.StatusServiceUnavailable, err)
		}
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"analysis": analysis})
}

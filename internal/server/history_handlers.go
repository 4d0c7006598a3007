package server

import (
	"errors"

	"mirrortime/internal/models"
	"mirrortime/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateHistory handles POST /api/history
func (s *Server) CreateHistory(c *fiber.Ctx) error {
	var req struct {
		UserID   int64  `json:"userId"`
		Time     string `json:"time"`
		Type     string `json:"type"`
		Thoughts string `json:"thoughts"`
		Details  any    `json:"details"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.historyService.SaveInterpretation(c.UserContext(), service.SaveInterpretationInput{
		UserID:   req.UserID,
		Time:     req.Time,
		Type:     req.Type,
		Thoughts: req.Thoughts,
		Details:  req.Details,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetHistory handles GET /api/history/:userId
func (s *Server) GetHistory(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	items, err := s.historyService.ListHistory(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(items)
}

// DeleteHistory handles DELETE /api/history/:id
func (s *Server) DeleteHistory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "ID")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	if err := s.historyService.DeleteHistory(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

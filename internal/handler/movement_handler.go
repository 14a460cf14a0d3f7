package handler

import (
	"inventix/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type MovementHandler struct {
	movementRepo repository.MovementRepository
}

func NewMovementHandler(movementRepo repository.MovementRepository) *MovementHandler {
	return &MovementHandler{movementRepo: movementRepo}
}

func (h *MovementHandler) GetMovements(c *fiber.Ctx) error {
	if ref := c.Query("reference"); ref != "" {
		movements, err := h.movementRepo.FindByReference(getOrgID(c), ref)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(movements)
	}

	movements, err := h.movementRepo.FindAll(getOrgID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(movements)
}

func (h *MovementHandler) GetMovement(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid movement ID"})
	}

	movement, err := h.movementRepo.FindByID(getOrgID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Movement not found"})
	}
	return c.JSON(movement)
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull identity from fiber locals (set by the auth middleware).

func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func getUserEmail(c *fiber.Ctx) string {
	userEmail := c.Locals("user_email")
	if userEmail == nil {
		return ""
	}
	return userEmail.(string)
}

// getOrgID returns the organization resolved by the org middleware.
func getOrgID(c *fiber.Ctx) uuid.UUID {
	orgID, ok := c.Locals("org_id").(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return orgID
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

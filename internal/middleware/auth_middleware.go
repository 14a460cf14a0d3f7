package middleware

import (
	"os"
	"strings"

	"inventix/internal/repository"
	"inventix/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequireAuth validates the bearer token and sets user info in context.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}
		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is inactive"})
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)

		return c.Next()
	}
}

// RequireOrg resolves the X-Org-ID header, verifies the authenticated user is
// a member, and scopes the request to that organization. Every tenant-owned
// route sits behind this.
func RequireOrg(orgRepo repository.OrganizationRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("X-Org-ID")
		if header == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Missing X-Org-ID header"})
		}

		orgID, err := uuid.Parse(header)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid organization ID"})
		}

		userID, err := uuid.Parse(c.Locals("user_id").(string))
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		}

		member, err := orgRepo.IsMember(orgID, userID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check membership"})
		}
		if !member {
			return c.Status(403).JSON(fiber.Map{"error": "Not a member of this organization"})
		}

		c.Locals("org_id", orgID)
		return c.Next()
	}
}

// RequireAdmin gates tenant administration behind the fixed allow-list of
// admin email addresses in ADMIN_EMAILS (comma separated).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("user_email").(string)
		if email == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
		}

		for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
			if admin != "" && strings.EqualFold(strings.TrimSpace(admin), email) {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{"error": "Forbidden: admin access required"})
	}
}

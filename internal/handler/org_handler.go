package handler

import (
	"inventix/internal/model"
	"inventix/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrgHandler struct {
	service service.OrgService
}

func NewOrgHandler(s service.OrgService) *OrgHandler {
	return &OrgHandler{service: s}
}

// MyOrganizations lists the organizations the signed-in user can select.
// GET /api/v1/orgs
func (h *OrgHandler) MyOrganizations(c *fiber.Ctx) error {
	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	orgs, err := h.service.MyOrganizations(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orgs)
}

// RequestOrganization records a tenant-creation request for admin review.
// POST /api/v1/orgs/requests
func (h *OrgHandler) RequestOrganization(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	created, err := h.service.RequestOrganization(userID, getUserEmail(c), req.Name)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Request submitted", "data": created})
}

// ListRequests lists tenant-creation requests (admin only).
// GET /api/v1/admin/org-requests?status=pending
func (h *OrgHandler) ListRequests(c *fiber.Ctx) error {
	status := c.Query("status", model.OrgRequestPending)
	requests, err := h.service.ListRequests(status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(requests)
}

// ApproveRequest creates the organization from a pending request (admin only).
// POST /api/v1/admin/org-requests/:id/approve
func (h *OrgHandler) ApproveRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	org, err := h.service.ApproveRequest(id, getUserEmail(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Organization created", "data": org})
}

// RejectRequest marks a pending request rejected (admin only).
// POST /api/v1/admin/org-requests/:id/reject
func (h *OrgHandler) RejectRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	if err := h.service.RejectRequest(id, getUserEmail(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Request rejected"})
}

package handler

import (
	"inventix/internal/model"
	"inventix/internal/repository"
	"inventix/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler talks to the repository directly; contacts carry no business
// rules beyond validation.
type ContactHandler struct {
	contactRepo repository.ContactRepository
}

func NewContactHandler(contactRepo repository.ContactRepository) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

func (h *ContactHandler) GetContacts(c *fiber.Ctx) error {
	kind := model.ContactKind(c.Query("kind"))
	contacts, err := h.contactRepo.FindAll(getOrgID(c), kind)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(contacts)
}

func (h *ContactHandler) GetContact(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid contact ID"})
	}

	contact, err := h.contactRepo.FindByID(getOrgID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Contact not found"})
	}
	return c.JSON(contact)
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var contact model.Contact
	if err := c.BodyParser(&contact); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.Validate(&contact); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	contact.OrgID = getOrgID(c)
	contact.Counter = false // The walk-in contact is created with the organization
	contact.CreatedBy = getUserID(c)
	contact.UpdatedBy = getUserID(c)
	if err := h.contactRepo.Create(&contact); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Contact created", "data": contact})
}

func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid contact ID"})
	}

	existing, err := h.contactRepo.FindByID(getOrgID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Contact not found"})
	}

	var req model.Contact
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Kind = req.Kind
	existing.Company = req.Company
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Address = req.Address
	existing.PostalCode = req.PostalCode
	existing.City = req.City
	existing.Country = req.Country
	existing.TaxID = req.TaxID
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.UpdatedBy = getUserID(c)

	if err := validator.Validate(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.contactRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Contact updated", "data": existing})
}

func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid contact ID"})
	}

	existing, err := h.contactRepo.FindByID(getOrgID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Contact not found"})
	}
	if existing.Counter {
		return c.Status(400).JSON(fiber.Map{"error": "The counter-sale contact cannot be deleted"})
	}

	if err := h.contactRepo.Delete(getOrgID(c), id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Contact deleted"})
}

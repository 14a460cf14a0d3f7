package service

import (
	"errors"
	"fmt"
	"strings"

	"inventix/internal/model"
	"inventix/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound   = errors.New("organization request not found")
	ErrRequestNotPending = errors.New("organization request already handled")
)

type OrgService interface {
	MyOrganizations(userID uuid.UUID) ([]model.Organization, error)
	RequestOrganization(userID uuid.UUID, email, name string) (*model.OrgRequest, error)
	ListRequests(status string) ([]model.OrgRequest, error)
	ApproveRequest(requestID uuid.UUID, adminEmail string) (*model.Organization, error)
	RejectRequest(requestID uuid.UUID, adminEmail string) error
}

type orgService struct {
	orgRepo     repository.OrganizationRepository
	contactRepo repository.ContactRepository
	db          *gorm.DB
}

func NewOrgService(orgRepo repository.OrganizationRepository, contactRepo repository.ContactRepository, db *gorm.DB) OrgService {
	return &orgService{orgRepo: orgRepo, contactRepo: contactRepo, db: db}
}

func (s *orgService) MyOrganizations(userID uuid.UUID) ([]model.Organization, error) {
	return s.orgRepo.ListForUser(userID)
}

// RequestOrganization records a pending tenant-creation request for manual
// admin action.
func (s *orgService) RequestOrganization(userID uuid.UUID, email, name string) (*model.OrgRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("organization name is required")
	}
	req := &model.OrgRequest{
		Name:           name,
		RequesterID:    userID,
		RequesterEmail: email,
		Status:         model.OrgRequestPending,
	}
	req.CreatedBy = userID.String()
	req.UpdatedBy = userID.String()
	if err := s.orgRepo.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *orgService) ListRequests(status string) ([]model.OrgRequest, error) {
	return s.orgRepo.ListRequests(status)
}

// ApproveRequest creates the organization, an owner membership for the
// requester, and the distinguished counter-sale contact, all in one
// transaction.
func (s *orgService) ApproveRequest(requestID uuid.UUID, adminEmail string) (*model.Organization, error) {
	req, err := s.orgRepo.FindRequestByID(requestID)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != model.OrgRequestPending {
		return nil, ErrRequestNotPending
	}

	org := &model.Organization{
		Name: req.Name,
		Slug: slugify(req.Name),
	}
	org.CreatedBy = adminEmail
	org.UpdatedBy = adminEmail

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orgRepo.Create(tx, org); err != nil {
			return err
		}

		member := &model.OrgMember{
			OrgID:  org.ID,
			UserID: req.RequesterID,
			Role:   model.OrgRoleOwner,
		}
		member.CreatedBy = adminEmail
		if err := s.orgRepo.AddMember(tx, member); err != nil {
			return err
		}

		// Walk-in sales need a client row to attach to.
		counter := &model.Contact{
			OrgID:   org.ID,
			Kind:    model.ContactClient,
			Company: "Vente comptoir",
			Counter: true,
		}
		counter.CreatedBy = adminEmail
		if err := tx.Create(counter).Error; err != nil {
			return err
		}

		settings := model.DefaultSettings(org.ID)
		settings.CompanyName = org.Name
		settings.CreatedBy = adminEmail
		if err := tx.Create(settings).Error; err != nil {
			return err
		}

		req.Status = model.OrgRequestApproved
		req.OrgID = &org.ID
		req.UpdatedBy = adminEmail
		return tx.Save(req).Error
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (s *orgService) RejectRequest(requestID uuid.UUID, adminEmail string) error {
	req, err := s.orgRepo.FindRequestByID(requestID)
	if err != nil {
		return ErrRequestNotFound
	}
	if req.Status != model.OrgRequestPending {
		return ErrRequestNotPending
	}
	req.Status = model.OrgRequestRejected
	req.UpdatedBy = adminEmail
	return s.orgRepo.UpdateRequest(req)
}

// slugify lowercases and dashes a name; a short random suffix keeps slugs
// unique without a retry loop.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	return fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
}

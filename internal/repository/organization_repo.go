package repository

import (
	"inventix/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(tx *gorm.DB, org *model.Organization) error
	FindByID(id uuid.UUID) (*model.Organization, error)
	ListForUser(userID uuid.UUID) ([]model.Organization, error)
	IsMember(orgID, userID uuid.UUID) (bool, error)
	AddMember(tx *gorm.DB, member *model.OrgMember) error

	CreateRequest(req *model.OrgRequest) error
	ListRequests(status string) ([]model.OrgRequest, error)
	FindRequestByID(id uuid.UUID) (*model.OrgRequest, error)
	UpdateRequest(req *model.OrgRequest) error
}

type organizationRepo struct {
	db *gorm.DB
}

func NewOrganizationRepo(db *gorm.DB) OrganizationRepository {
	return &organizationRepo{db}
}

func (r *organizationRepo) Create(tx *gorm.DB, org *model.Organization) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(org).Error
}

func (r *organizationRepo) FindByID(id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	err := r.db.First(&org, "id = ?", id).Error
	return &org, err
}

func (r *organizationRepo) ListForUser(userID uuid.UUID) ([]model.Organization, error) {
	var orgs []model.Organization
	err := r.db.
		Joins("JOIN org_members ON org_members.org_id = organizations.id").
		Where("org_members.user_id = ? AND org_members.deleted_at IS NULL", userID).
		Order("organizations.name ASC").
		Find(&orgs).Error
	return orgs, err
}

func (r *organizationRepo) IsMember(orgID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.OrgMember{}).
		Where("org_id = ? AND user_id = ?", orgID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *organizationRepo) AddMember(tx *gorm.DB, member *model.OrgMember) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(member).Error
}

func (r *organizationRepo) CreateRequest(req *model.OrgRequest) error {
	return r.db.Create(req).Error
}

// ListRequests lists tenant-creation requests, optionally filtered by status.
func (r *organizationRepo) ListRequests(status string) ([]model.OrgRequest, error) {
	var requests []model.OrgRequest
	q := r.db.Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&requests).Error
	return requests, err
}

func (r *organizationRepo) FindRequestByID(id uuid.UUID) (*model.OrgRequest, error) {
	var req model.OrgRequest
	err := r.db.First(&req, "id = ?", id).Error
	return &req, err
}

func (r *organizationRepo) UpdateRequest(req *model.OrgRequest) error {
	return r.db.Save(req).Error
}

package repository

import (
	"inventix/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *model.Contact) error
	FindAll(orgID uuid.UUID, kind model.ContactKind) ([]model.Contact, error)
	FindByID(orgID, id uuid.UUID) (*model.Contact, error)
	FindCounter(orgID uuid.UUID) (*model.Contact, error)
	Update(contact *model.Contact) error
	Delete(orgID, id uuid.UUID) error
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db}
}

func (r *contactRepo) Create(contact *model.Contact) error {
	return r.db.Create(contact).Error
}

// FindAll lists contacts, optionally filtered by kind (empty kind = all).
func (r *contactRepo) FindAll(orgID uuid.UUID, kind model.ContactKind) ([]model.Contact, error) {
	var contacts []model.Contact
	q := r.db.Where("org_id = ?", orgID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Order("company ASC, last_name ASC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo) FindByID(orgID, id uuid.UUID) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.First(&contact, "org_id = ? AND id = ?", orgID, id).Error
	return &contact, err
}

func (r *contactRepo) FindCounter(orgID uuid.UUID) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.First(&contact, "org_id = ? AND counter = ?", orgID, true).Error
	return &contact, err
}

func (r *contactRepo) Update(contact *model.Contact) error {
	return r.db.Save(contact).Error
}

func (r *contactRepo) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&model.Contact{}, "org_id = ? AND id = ?", orgID, id).Error
}

package repository

import (
	"time"

	"inventix/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(purchase *model.Purchase) error
	FindAll(orgID uuid.UUID) ([]model.Purchase, error)
	FindByID(orgID, id uuid.UUID) (*model.Purchase, error)
	FindBetween(orgID uuid.UUID, start, end time.Time) ([]model.Purchase, error)
	Update(purchase *model.Purchase) error
	Delete(orgID, id uuid.UUID) error
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(purchase *model.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *purchaseRepo) FindAll(orgID uuid.UUID) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Supplier").Preload("Category").
		Where("org_id = ?", orgID).Order("date DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(orgID, id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Supplier").Preload("Category").
		First(&purchase, "org_id = ? AND id = ?", orgID, id).Error
	return &purchase, err
}

func (r *purchaseRepo) FindBetween(orgID uuid.UUID, start, end time.Time) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Where("org_id = ? AND date >= ? AND date < ?", orgID, start, end).Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) Update(purchase *model.Purchase) error {
	return r.db.Save(purchase).Error
}

func (r *purchaseRepo) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&model.Purchase{}, "org_id = ? AND id = ?", orgID, id).Error
}

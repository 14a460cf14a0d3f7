package repository

import (
	"time"

	"inventix/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovementRepository interface {
	Create(tx *gorm.DB, movement *model.Movement) error
	FindAll(orgID uuid.UUID) ([]model.Movement, error)
	FindByID(orgID, id uuid.UUID) (*model.Movement, error)
	FindByReference(orgID uuid.UUID, reference string) ([]model.Movement, error)
	CountByArticle(orgID, articleID uuid.UUID) (int64, error)
	DeleteByReference(tx *gorm.DB, orgID uuid.UUID, reference string) error
	FindSalesBetween(orgID uuid.UUID, start, end time.Time) ([]model.Movement, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

func (r *movementRepo) Create(tx *gorm.DB, movement *model.Movement) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(movement).Error
}

func (r *movementRepo) FindAll(orgID uuid.UUID) ([]model.Movement, error) {
	var movements []model.Movement
	err := r.db.Preload("Article").Where("org_id = ?", orgID).Order("date DESC, created_at DESC").Find(&movements).Error
	return movements, err
}

func (r *movementRepo) FindByID(orgID, id uuid.UUID) (*model.Movement, error) {
	var movement model.Movement
	err := r.db.Preload("Article").First(&movement, "org_id = ? AND id = ?", orgID, id).Error
	return &movement, err
}

func (r *movementRepo) FindByReference(orgID uuid.UUID, reference string) ([]model.Movement, error) {
	var movements []model.Movement
	err := r.db.Preload("Article").
		Where("org_id = ? AND reference = ?", orgID, reference).
		Order("created_at ASC").
		Find(&movements).Error
	return movements, err
}

func (r *movementRepo) DeleteByReference(tx *gorm.DB, orgID uuid.UUID, reference string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Delete(&model.Movement{}, "org_id = ? AND reference = ?", orgID, reference).Error
}

func (r *movementRepo) CountByArticle(orgID, articleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Movement{}).
		Where("org_id = ? AND article_id = ?", orgID, articleID).
		Count(&count).Error
	return count, err
}

// FindSalesBetween returns sale-kind movements dated within [start, end).
func (r *movementRepo) FindSalesBetween(orgID uuid.UUID, start, end time.Time) ([]model.Movement, error) {
	var movements []model.Movement
	err := r.db.Preload("Article").
		Where("org_id = ? AND kind IN ? AND date >= ? AND date < ?",
			orgID, []model.MovementKind{model.MovementClientSale, model.MovementCounterSale}, start, end).
		Find(&movements).Error
	return movements, err
}

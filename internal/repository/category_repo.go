package repository

import (
	"inventix/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(orgID uuid.UUID, kind model.CategoryKind) ([]model.Category, error)
	FindByID(orgID, id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	Delete(orgID, id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll(orgID uuid.UUID, kind model.CategoryKind) ([]model.Category, error) {
	var categories []model.Category
	q := r.db.Where("org_id = ?", orgID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Order("label ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(orgID, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "org_id = ? AND id = ?", orgID, id).Error
	return &category, err
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&model.Category{}, "org_id = ? AND id = ?", orgID, id).Error
}

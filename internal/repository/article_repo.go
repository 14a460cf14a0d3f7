package repository

import (
	"inventix/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *model.Article) error
	FindAll(orgID uuid.UUID) ([]model.Article, error)
	FindByID(orgID, id uuid.UUID) (*model.Article, error)
	FindByCode(orgID uuid.UUID, code string) (*model.Article, error)
	Update(article *model.Article) error
	Delete(orgID, id uuid.UUID) error
	AdjustStock(tx *gorm.DB, orgID, id uuid.UUID, delta decimal.Decimal, updatedBy string) error
}

type articleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepository {
	return &articleRepo{db}
}

func (r *articleRepo) Create(article *model.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepo) FindAll(orgID uuid.UUID) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.Preload("Category").Where("org_id = ?", orgID).Order("code ASC").Find(&articles).Error
	return articles, err
}

func (r *articleRepo) FindByID(orgID, id uuid.UUID) (*model.Article, error) {
	var article model.Article
	err := r.db.Preload("Category").First(&article, "org_id = ? AND id = ?", orgID, id).Error
	return &article, err
}

func (r *articleRepo) FindByCode(orgID uuid.UUID, code string) (*model.Article, error) {
	var article model.Article
	err := r.db.First(&article, "org_id = ? AND code = ?", orgID, code).Error
	return &article, err
}

func (r *articleRepo) Update(article *model.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepo) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&model.Article{}, "org_id = ? AND id = ?", orgID, id).Error
}

// AdjustStock applies a signed stock delta. It takes *gorm.DB so callers can
// run it inside a transaction together with the movement writes.
func (r *articleRepo) AdjustStock(tx *gorm.DB, orgID, id uuid.UUID, delta decimal.Decimal, updatedBy string) error {
	if tx == nil {
		tx = r.db
	}
	res := tx.Model(&model.Article{}).
		Where("org_id = ? AND id = ?", orgID, id).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_by": updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

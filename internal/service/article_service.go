package service

import (
	"errors"

	"inventix/internal/model"
	"inventix/internal/repository"
	"inventix/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCode = errors.New("article code already exists")
	ErrArticleInUse  = errors.New("article has stock movements")
)

type ArticleService interface {
	Create(orgID uuid.UUID, article *model.Article, userID string) error
	Update(orgID, id uuid.UUID, article *model.Article, userID string) (*model.Article, error)
	GetAll(orgID uuid.UUID) ([]model.Article, error)
	Get(orgID, id uuid.UUID) (*model.Article, error)
	Delete(orgID, id uuid.UUID) error
}

type articleService struct {
	articleRepo  repository.ArticleRepository
	movementRepo repository.MovementRepository
}

func NewArticleService(articleRepo repository.ArticleRepository, movementRepo repository.MovementRepository) ArticleService {
	return &articleService{articleRepo: articleRepo, movementRepo: movementRepo}
}

func (s *articleService) Create(orgID uuid.UUID, article *model.Article, userID string) error {
	if err := validator.Validate(article); err != nil {
		return err
	}

	existing, _ := s.articleRepo.FindByCode(orgID, article.Code)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrDuplicateCode
	}

	article.OrgID = orgID
	article.SaleTTC = ArticleSaleTTC(article) // Refresh the display cache
	article.CreatedBy = userID
	article.UpdatedBy = userID
	return s.articleRepo.Create(article)
}

func (s *articleService) Update(orgID, id uuid.UUID, req *model.Article, userID string) (*model.Article, error) {
	existing, err := s.articleRepo.FindByID(orgID, id)
	if err != nil {
		return nil, ErrArticleNotFound
	}

	existing.Code = req.Code
	existing.Name = req.Name
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID
	existing.ImageURL = req.ImageURL
	existing.PurchasePrice = req.PurchasePrice
	existing.MarginPct = req.MarginPct
	existing.VATPct = req.VATPct
	existing.Location = req.Location
	existing.Unit = req.Unit
	existing.Packaging = req.Packaging
	existing.SaleTTC = ArticleSaleTTC(existing)
	existing.UpdatedBy = userID
	existing.Category = nil

	if err := validator.Validate(existing); err != nil {
		return nil, err
	}
	if err := s.articleRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *articleService) GetAll(orgID uuid.UUID) ([]model.Article, error) {
	return s.articleRepo.FindAll(orgID)
}

func (s *articleService) Get(orgID, id uuid.UUID) (*model.Article, error) {
	return s.articleRepo.FindByID(orgID, id)
}

// Delete refuses to remove an article that still appears in the movement
// ledger: invoices rebuild their lines from those movements and restore
// stock through the article row.
func (s *articleService) Delete(orgID, id uuid.UUID) error {
	count, err := s.movementRepo.CountByArticle(orgID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrArticleInUse
	}
	return s.articleRepo.Delete(orgID, id)
}

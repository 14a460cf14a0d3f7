package handler

import (
	"inventix/internal/model"
	"inventix/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ArticleHandler struct {
	service service.ArticleService
}

func NewArticleHandler(s service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: s}
}

func (h *ArticleHandler) GetArticles(c *fiber.Ctx) error {
	articles, err := h.service.GetAll(getOrgID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(articles)
}

func (h *ArticleHandler) GetArticle(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid article ID"})
	}

	article, err := h.service.Get(getOrgID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
	}
	return c.JSON(article)
}

func (h *ArticleHandler) CreateArticle(c *fiber.Ctx) error {
	var article model.Article
	if err := c.BodyParser(&article); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(getOrgID(c), &article, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Article created", "data": article})
}

func (h *ArticleHandler) UpdateArticle(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid article ID"})
	}

	var article model.Article
	if err := c.BodyParser(&article); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(getOrgID(c), id, &article, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Article updated", "data": updated})
}

func (h *ArticleHandler) DeleteArticle(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid article ID"})
	}

	if err := h.service.Delete(getOrgID(c), id); err != nil {
		if err == service.ErrArticleInUse {
			return c.Status(409).JSON(fiber.Map{"error": "Article has stock movements"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
}

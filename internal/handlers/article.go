package handlers

import (
	"agrimart/internal/models"
	"agrimart/internal/services/article"
	"agrimart/internal/utils/pagination"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ArticleHandler struct {
	articleService article.Service
}

func NewArticleHandler(articleService article.Service) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListPublished is the public blog listing.
func (h *ArticleHandler) ListPublished(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	articles, total, err := h.articleService.ListPublished(c.Context(), p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, articles))
}

func (h *ArticleHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.BadRequest(c, "invalid slug")
	}

	a, err := h.articleService.GetBySlug(c.Context(), slug)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Article retrieved", a)
}

// ListAll includes drafts and is admin-only.
func (h *ArticleHandler) ListAll(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	articles, total, err := h.articleService.ListAll(c.Context(), p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, articles))
}

func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input models.ArticleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	a, err := h.articleService.Create(c.Context(), claims.UserID, &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Article created",
		"data":    a,
	})
}

func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid article id")
	}

	var input models.ArticleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	a, err := h.articleService.Update(c.Context(), articleID, &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Article updated", a)
}

func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid article id")
	}

	if err := h.articleService.Delete(c.Context(), articleID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Article deleted", nil)
}

// Package article covers the admin CMS.
package article

import (
	"context"
	"time"

	"agrimart/internal/models"
	"agrimart/internal/repositories"
	"agrimart/internal/utils"
	"agrimart/internal/validation"
)

type Service interface {
	Create(ctx context.Context, authorID uint, input *models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, articleID uint, input *models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, articleID uint) error
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListPublished(ctx context.Context, offset, limit int) ([]models.Article, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]models.Article, int64, error)
}

type service struct {
	repo repositories.ArticleRepository
	now  func() time.Time
}

func NewService(repo repositories.ArticleRepository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, authorID uint, input *models.ArticleInput) (*models.Article, error) {
	if input.Title == "" {
		return nil, validation.ValidationError{Field: "title", Message: "title is required"}
	}

	article := &models.Article{
		AuthorID:  authorID,
		Title:     input.Title,
		Slug:      utils.Slugify(input.Title),
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		CoverURL:  input.CoverURL,
		Published: input.Published,
	}
	if input.Published {
		now := s.now()
		article.PublishedAt = &now
	}

	if err := s.repo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *service) Update(ctx context.Context, articleID uint, input *models.ArticleInput) (*models.Article, error) {
	article, err := s.repo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" && input.Title != article.Title {
		article.Title = input.Title
		article.Slug = utils.Slugify(input.Title)
	}
	article.Excerpt = input.Excerpt
	article.Content = input.Content
	article.CoverURL = input.CoverURL

	if input.Published && !article.Published {
		now := s.now()
		article.PublishedAt = &now
	}
	article.Published = input.Published

	if err := s.repo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *service) Delete(ctx context.Context, articleID uint) error {
	return s.repo.Delete(articleID)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.repo.GetBySlug(slug)
}

func (s *service) ListPublished(ctx context.Context, offset, limit int) ([]models.Article, int64, error) {
	return s.repo.ListPublished(offset, limit)
}

func (s *service) ListAll(ctx context.Context, offset, limit int) ([]models.Article, int64, error) {
	return s.repo.ListAll(offset, limit)
}

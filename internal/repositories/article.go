package repositories

import (
	"errors"

	"agrimart/internal/models"

	"gorm.io/gorm"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrArticleSlugTaken = errors.New("article slug already exists")
)

// ArticleRepository persists CMS articles.
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	ListPublished(offset, limit int) ([]models.Article, int64, error)
	ListAll(offset, limit int) ([]models.Article, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	var existing models.Article
	err := r.db.Where("slug = ?", article.Slug).First(&existing).Error
	if err == nil {
		return ErrArticleSlugTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (r *articleRepository) ListPublished(offset, limit int) ([]models.Article, int64, error) {
	query := r.db.Model(&models.Article{}).Where("published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Order("published_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) ListAll(offset, limit int) ([]models.Article, int64, error) {
	var total int64
	if err := r.db.Model(&models.Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	return articles, total, err
}

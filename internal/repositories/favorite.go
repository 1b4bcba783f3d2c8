package repositories

import (
	"context"
	"errors"
	"log"

	"agrimart/internal/models"
	"agrimart/internal/repositories/cache"

	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository backs the wishlist. Reads go through the redis
// cache best-effort; every write deletes the user's wishlist key.
type FavoriteRepository interface {
	Add(userID, productID uint) error
	Remove(userID, productID uint) error
	ListByUser(userID uint) ([]models.Favorite, error)
}

type favoriteRepository struct {
	db    *gorm.DB
	cache cache.Service
}

func NewFavoriteRepository(db *gorm.DB, cacheSvc cache.Service) FavoriteRepository {
	return &favoriteRepository{db: db, cache: cacheSvc}
}

func (r *favoriteRepository) Add(userID, productID uint) error {
	var existing models.Favorite
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		return nil // already wishlisted, idempotent
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	fav := models.Favorite{UserID: userID, ProductID: productID}
	if err := r.db.Create(&fav).Error; err != nil {
		return err
	}
	r.invalidate(userID)
	return nil
}

func (r *favoriteRepository) Remove(userID, productID uint) error {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	r.invalidate(userID)
	return nil
}

func (r *favoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	ctx := context.Background()
	key := cache.WishlistKey(userID)

	var cached []models.Favorite
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	var favorites []models.Favorite
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, favorites); err != nil {
		log.Printf("failed to cache wishlist for user %d: %v", userID, err)
	}
	return favorites, nil
}

func (r *favoriteRepository) invalidate(userID uint) {
	if err := r.cache.Delete(context.Background(), cache.WishlistKey(userID)); err != nil {
		log.Printf("failed to invalidate wishlist cache for user %d: %v", userID, err)
	}
}

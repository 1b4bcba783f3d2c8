// Package wishlist covers buyer favorites. The repository serves reads
// through redis best-effort and invalidates on writes.
package wishlist

import (
	"context"

	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

type Service interface {
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
	List(ctx context.Context, userID uint) ([]models.Favorite, error)
}

type service struct {
	favoriteRepo repositories.FavoriteRepository
	productRepo  repositories.ProductRepository
}

func NewService(favoriteRepo repositories.FavoriteRepository, productRepo repositories.ProductRepository) Service {
	return &service{favoriteRepo: favoriteRepo, productRepo: productRepo}
}

func (s *service) Add(ctx context.Context, userID, productID uint) error {
	// Reject dangling product ids before creating the row.
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}
	return s.favoriteRepo.Add(userID, productID)
}

func (s *service) Remove(ctx context.Context, userID, productID uint) error {
	return s.favoriteRepo.Remove(userID, productID)
}

func (s *service) List(ctx context.Context, userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.ListByUser(userID)
}

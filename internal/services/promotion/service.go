// Package promotion covers vendor discounts and flash sales.
package promotion

import (
	"context"
	"strings"

	apperrors "agrimart/internal/errors"
	"agrimart/internal/models"
	"agrimart/internal/repositories"
	"agrimart/internal/validation"

	"github.com/google/uuid"
)

const (
	minPercentage = 1
	maxPercentage = 90
)

var ErrInvalidWindow = validation.ValidationError{
	Field:   "starts_at",
	Message: "promotion start must be before its end",
}

type Service interface {
	CreateDiscount(ctx context.Context, vendorID uint, input *models.CreateDiscountInput) (*models.Discount, error)
	ListDiscounts(ctx context.Context, vendorID uint) ([]models.Discount, error)
	DeactivateDiscount(ctx context.Context, vendorID, discountID uint) error

	CreateFlashSale(ctx context.Context, vendorID uint, input *models.CreateFlashSaleInput) (*models.FlashSale, error)
	ListFlashSales(ctx context.Context, vendorID uint) ([]models.FlashSale, error)
	DeleteFlashSale(ctx context.Context, vendorID, saleID uint) error
}

type service struct {
	repo        repositories.PromotionRepository
	productRepo repositories.ProductRepository
}

func NewService(repo repositories.PromotionRepository, productRepo repositories.ProductRepository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) CreateDiscount(ctx context.Context, vendorID uint, input *models.CreateDiscountInput) (*models.Discount, error) {
	v := validation.New()
	v.Check(input.Percentage >= minPercentage && input.Percentage <= maxPercentage,
		"percentage", "percentage must be between 1 and 90")
	v.Check(input.StartsAt.Before(input.EndsAt), "starts_at", ErrInvalidWindow.Message)
	v.Check(input.MaxUses >= 0, "max_uses", "max uses cannot be negative")
	if !v.Valid() {
		return nil, v.Errors[0]
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		code = strings.ToUpper(uuid.NewString()[:8])
	}

	discount := &models.Discount{
		VendorID:   vendorID,
		Code:       code,
		Percentage: input.Percentage,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		MaxUses:    input.MaxUses,
		Active:     true,
	}
	if err := s.repo.CreateDiscount(discount); err != nil {
		return nil, err
	}
	return discount, nil
}

func (s *service) ListDiscounts(ctx context.Context, vendorID uint) ([]models.Discount, error) {
	return s.repo.ListDiscountsByVendor(vendorID)
}

func (s *service) DeactivateDiscount(ctx context.Context, vendorID, discountID uint) error {
	return s.repo.DeactivateDiscount(vendorID, discountID)
}

func (s *service) CreateFlashSale(ctx context.Context, vendorID uint, input *models.CreateFlashSaleInput) (*models.FlashSale, error) {
	if !input.StartsAt.Before(input.EndsAt) {
		return nil, ErrInvalidWindow
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.VendorID != vendorID {
		return nil, apperrors.ErrNotOwner
	}
	if input.SalePrice <= 0 || input.SalePrice >= product.Price {
		return nil, validation.ValidationError{
			Field:   "sale_price",
			Message: "sale price must be positive and below the regular price",
		}
	}

	sale := &models.FlashSale{
		VendorID:  vendorID,
		ProductID: input.ProductID,
		SalePrice: input.SalePrice,
		StartsAt:  input.StartsAt,
		EndsAt:    input.EndsAt,
	}
	if err := s.repo.CreateFlashSale(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *service) ListFlashSales(ctx context.Context, vendorID uint) ([]models.FlashSale, error) {
	return s.repo.ListFlashSalesByVendor(vendorID)
}

func (s *service) DeleteFlashSale(ctx context.Context, vendorID, saleID uint) error {
	return s.repo.DeleteFlashSale(vendorID, saleID)
}

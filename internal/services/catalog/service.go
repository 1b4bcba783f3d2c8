// Package catalog serves the public storefront product listing and the
// vendor-side product management.
package catalog

import (
	apperrors "agrimart/internal/errors"
	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

type Service interface {
	List(filter models.ProductFilter, offset, limit int) ([]models.Product, int64, error)
	Get(id uint) (*models.Product, error)

	CreateForVendor(vendorID uint, input *models.CreateProductInput) (*models.Product, error)
	UpdateForVendor(vendorID, productID uint, input *models.UpdateProductInput) (*models.Product, error)
	ArchiveForVendor(vendorID, productID uint) error
	ListByVendor(vendorID uint, offset, limit int) ([]models.Product, int64, error)
}

type service struct {
	productRepo repositories.ProductRepository
}

func NewService(productRepo repositories.ProductRepository) Service {
	return &service{productRepo: productRepo}
}

func (s *service) List(filter models.ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	return s.productRepo.List(filter, offset, limit)
}

func (s *service) Get(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *service) CreateForVendor(vendorID uint, input *models.CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		VendorID:    vendorID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Unit:        input.Unit,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		IsOrganic:   input.IsOrganic,
		Status:      models.ProductActive,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) UpdateForVendor(vendorID, productID uint, input *models.UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.VendorID != vendorID {
		return nil, apperrors.ErrNotOwner
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.IsOrganic != nil {
		product.IsOrganic = *input.IsOrganic
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *service) ArchiveForVendor(vendorID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product.VendorID != vendorID {
		return apperrors.ErrNotOwner
	}
	return s.productRepo.Archive(productID)
}

func (s *service) ListByVendor(vendorID uint, offset, limit int) ([]models.Product, int64, error) {
	return s.productRepo.ListByVendor(vendorID, offset, limit)
}

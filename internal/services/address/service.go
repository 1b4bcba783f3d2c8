// Package address covers buyer delivery addresses. The single-default
// invariant is enforced transactionally by the repository; this layer
// adds ownership checks.
package address

import (
	"context"

	apperrors "agrimart/internal/errors"
	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

type Service interface {
	Create(ctx context.Context, userID uint, input *models.AddressInput) (*models.Address, error)
	List(ctx context.Context, userID uint) ([]models.Address, error)
	Update(ctx context.Context, userID, addressID uint, input *models.AddressInput) (*models.Address, error)
	Delete(ctx context.Context, userID, addressID uint) error
	SetDefault(ctx context.Context, userID, addressID uint) error
}

type service struct {
	repo repositories.AddressRepository
}

func NewService(repo repositories.AddressRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uint, input *models.AddressInput) (*models.Address, error) {
	address := &models.Address{
		UserID:     userID,
		Label:      input.Label,
		Street:     input.Street,
		City:       input.City,
		Region:     input.Region,
		PostalCode: input.PostalCode,
		Phone:      input.Phone,
		IsDefault:  input.IsDefault,
	}
	if err := s.repo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *service) List(ctx context.Context, userID uint) ([]models.Address, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Update(ctx context.Context, userID, addressID uint, input *models.AddressInput) (*models.Address, error) {
	address, err := s.owned(userID, addressID)
	if err != nil {
		return nil, err
	}

	address.Label = input.Label
	address.Street = input.Street
	address.City = input.City
	address.Region = input.Region
	address.PostalCode = input.PostalCode
	address.Phone = input.Phone

	if err := s.repo.Update(address); err != nil {
		return nil, err
	}

	// Default changes go through the transactional path, never a plain
	// field write.
	if input.IsDefault && !address.IsDefault {
		if err := s.repo.SetDefault(userID, addressID); err != nil {
			return nil, err
		}
		address.IsDefault = true
	}
	return address, nil
}

func (s *service) Delete(ctx context.Context, userID, addressID uint) error {
	if _, err := s.owned(userID, addressID); err != nil {
		return err
	}
	return s.repo.Delete(addressID)
}

func (s *service) SetDefault(ctx context.Context, userID, addressID uint) error {
	if _, err := s.owned(userID, addressID); err != nil {
		return err
	}
	return s.repo.SetDefault(userID, addressID)
}

func (s *service) owned(userID, addressID uint) (*models.Address, error) {
	address, err := s.repo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return address, nil
}

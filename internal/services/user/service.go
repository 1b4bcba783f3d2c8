// Package user covers buyer profile operations.
package user

import (
	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

type Service interface {
	GetByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error)
}

type UpdateProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

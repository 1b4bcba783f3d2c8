package repositories

import (
	"errors"

	"agrimart/internal/models"

	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines delivery address persistence operations.
type AddressRepository interface {
	Create(address *models.Address) error
	GetByID(id uint) (*models.Address, error)
	ListByUser(userID uint) ([]models.Address, error)
	Update(address *models.Address) error
	Delete(id uint) error
	// SetDefault unsets every other default for the user and marks the
	// given address in a single transaction, so at most one default is
	// ever visible.
	SetDefault(userID, addressID uint) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *models.Address) error {
	if !address.IsDefault {
		return r.db.Create(address).Error
	}
	// A new default address demotes the existing one atomically.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ?", address.UserID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Create(address).Error
	})
}

func (r *addressRepository) GetByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) ListByUser(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	return addresses, err
}

func (r *addressRepository) Update(address *models.Address) error {
	return r.db.Save(address).Error
}

func (r *addressRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Address{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func (r *addressRepository) SetDefault(userID, addressID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAddressNotFound
		}
		return tx.Model(&models.Address{}).
			Where("user_id = ? AND id <> ?", userID, addressID).
			Update("is_default", false).Error
	})
}

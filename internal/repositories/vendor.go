package repositories

import (
	"context"
	"errors"
	"log"

	"agrimart/internal/models"
	"agrimart/internal/repositories/cache"

	"gorm.io/gorm"
)

var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines vendor persistence operations.
type VendorRepository interface {
	Create(vendor *models.Vendor) error
	GetByID(id uint) (*models.Vendor, error)
	GetByUserID(userID uint) (*models.Vendor, error)
	Update(vendor *models.Vendor) error
	// SetStatus writes the status and rejection reason together.
	SetStatus(id uint, status models.AccountStatus, rejectionReason *string) error
	// DeleteWithProducts removes the vendor and archives its products in
	// one transaction so no product is left pointing at a missing vendor.
	DeleteWithProducts(id uint) error
	List(status models.AccountStatus, offset, limit int) ([]models.Vendor, int64, error)
	ListRecent(limit int) ([]models.Vendor, error)
	Count() (int64, error)
	CountByStatus(status models.AccountStatus) (int64, error)
}

type vendorRepository struct {
	db    *gorm.DB
	cache cache.Service
}

func NewVendorRepository(db *gorm.DB, cacheSvc cache.Service) VendorRepository {
	return &vendorRepository{db: db, cache: cacheSvc}
}

// Create flips the owning user's role to vendor in the same transaction
// as the vendor insert.
func (r *vendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vendor).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", vendor.UserID).
			Update("role", models.RoleVendor).Error
	})
}

func (r *vendorRepository) GetByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetByUserID(userID uint) (*models.Vendor, error) {
	ctx := context.Background()
	key := cache.VendorUserKey(userID)

	var cached models.Vendor
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	var vendor models.Vendor
	if err := r.db.Where("user_id = ?", userID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	if err := r.cache.Set(ctx, key, &vendor); err != nil {
		log.Printf("failed to cache vendor for user %d: %v", userID, err)
	}
	return &vendor, nil
}

func (r *vendorRepository) Update(vendor *models.Vendor) error {
	if err := r.db.Save(vendor).Error; err != nil {
		return err
	}
	r.invalidate(vendor)
	return nil
}

func (r *vendorRepository) SetStatus(id uint, status models.AccountStatus, rejectionReason *string) error {
	vendor, err := r.GetByID(id)
	if err != nil {
		return err
	}
	result := r.db.Model(&models.Vendor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           status,
			"rejection_reason": rejectionReason,
		})
	if result.Error != nil {
		return result.Error
	}
	r.invalidate(vendor)
	return nil
}

func (r *vendorRepository) DeleteWithProducts(id uint) error {
	vendor, err := r.GetByID(id)
	if err != nil {
		return err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("vendor_id = ?", id).
			Update("status", models.ProductArchived).Error; err != nil {
			return err
		}
		result := tx.Unscoped().Delete(&models.Vendor{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVendorNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidate(vendor)
	return nil
}

func (r *vendorRepository) List(status models.AccountStatus, offset, limit int) ([]models.Vendor, int64, error) {
	query := r.db.Model(&models.Vendor{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vendors []models.Vendor
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&vendors).Error
	return vendors, total, err
}

func (r *vendorRepository) ListRecent(limit int) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Order("created_at DESC").Limit(limit).Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Count(&count).Error
	return count, err
}

func (r *vendorRepository) CountByStatus(status models.AccountStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *vendorRepository) invalidate(vendor *models.Vendor) {
	err := r.cache.Delete(context.Background(),
		cache.VendorKey(vendor.ID),
		cache.VendorUserKey(vendor.UserID),
	)
	if err != nil {
		log.Printf("failed to invalidate vendor cache %d: %v", vendor.ID, err)
	}
}

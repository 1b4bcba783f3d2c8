package repositories

import (
	"errors"

	"agrimart/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDiscountNotFound  = errors.New("discount not found")
	ErrDiscountCodeTaken = errors.New("discount code already exists")
	ErrFlashSaleNotFound = errors.New("flash sale not found")
)

// PromotionRepository persists vendor discounts and flash sales.
type PromotionRepository interface {
	CreateDiscount(discount *models.Discount) error
	GetDiscountByCode(code string) (*models.Discount, error)
	ListDiscountsByVendor(vendorID uint) ([]models.Discount, error)
	DeactivateDiscount(vendorID, discountID uint) error
	// IncrementUsage bumps used_count only while the usage cap holds.
	IncrementUsage(discountID uint) error

	CreateFlashSale(sale *models.FlashSale) error
	ListFlashSalesByVendor(vendorID uint) ([]models.FlashSale, error)
	DeleteFlashSale(vendorID, saleID uint) error
}

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) CreateDiscount(discount *models.Discount) error {
	var existing models.Discount
	err := r.db.Where("code = ?", discount.Code).First(&existing).Error
	if err == nil {
		return ErrDiscountCodeTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(discount).Error
}

func (r *promotionRepository) GetDiscountByCode(code string) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.Where("code = ?", code).First(&discount).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &discount, nil
}

func (r *promotionRepository) ListDiscountsByVendor(vendorID uint) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.Where("vendor_id = ?", vendorID).
		Order("created_at DESC").Find(&discounts).Error
	return discounts, err
}

func (r *promotionRepository) DeactivateDiscount(vendorID, discountID uint) error {
	result := r.db.Model(&models.Discount{}).
		Where("id = ? AND vendor_id = ?", discountID, vendorID).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

func (r *promotionRepository) IncrementUsage(discountID uint) error {
	result := r.db.Model(&models.Discount{}).
		Where("id = ? AND (max_uses = 0 OR used_count < max_uses)", discountID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}
	return nil
}

func (r *promotionRepository) CreateFlashSale(sale *models.FlashSale) error {
	return r.db.Create(sale).Error
}

func (r *promotionRepository) ListFlashSalesByVendor(vendorID uint) ([]models.FlashSale, error) {
	var sales []models.FlashSale
	err := r.db.Where("vendor_id = ?", vendorID).
		Order("starts_at DESC").Find(&sales).Error
	return sales, err
}

func (r *promotionRepository) DeleteFlashSale(vendorID, saleID uint) error {
	result := r.db.Where("id = ? AND vendor_id = ?", saleID, vendorID).
		Delete(&models.FlashSale{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFlashSaleNotFound
	}
	return nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount is a vendor promotion code with a validity window and a
// usage counter.
type Discount struct {
	gorm.Model
	VendorID   uint      `gorm:"index;not null" json:"vendor_id"`
	Code       string    `gorm:"uniqueIndex;not null" json:"code"`
	Percentage int       `gorm:"not null" json:"percentage"`
	StartsAt   time.Time `gorm:"not null" json:"starts_at"`
	EndsAt     time.Time `gorm:"not null" json:"ends_at"`
	MaxUses    int       `gorm:"default:0" json:"max_uses"` // 0 means unlimited
	UsedCount  int       `gorm:"default:0" json:"used_count"`
	Active     bool      `gorm:"default:true" json:"active"`
}

// Usable reports whether the discount may be applied at the given time.
func (d *Discount) Usable(now time.Time) bool {
	if !d.Active || now.Before(d.StartsAt) || now.After(d.EndsAt) {
		return false
	}
	if d.MaxUses > 0 && d.UsedCount >= d.MaxUses {
		return false
	}
	return true
}

type FlashSale struct {
	gorm.Model
	VendorID  uint      `gorm:"index;not null" json:"vendor_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	SalePrice float64   `gorm:"not null" json:"sale_price"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time `gorm:"not null" json:"ends_at"`
}

type CreateDiscountInput struct {
	Code       string    `json:"code"`
	Percentage int       `json:"percentage"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	MaxUses    int       `json:"max_uses"`
}

type CreateFlashSaleInput struct {
	ProductID uint      `json:"product_id"`
	SalePrice float64   `json:"sale_price"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
}

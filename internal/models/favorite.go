package models

import "gorm.io/gorm"

// Favorite is a wishlist entry; one row per user/product pair.
type Favorite struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_fav_user_product;not null" json:"product_id"`

	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

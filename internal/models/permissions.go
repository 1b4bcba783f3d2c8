package models

// Roles
const (
	RoleBuyer  = "buyer"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

// Permission constants
const (
	// Storefront / buyer permissions
	PermissionOrderRead     = "order:read"
	PermissionOrderWrite    = "order:write"
	PermissionWishlistWrite = "wishlist:write"
	PermissionAddressWrite  = "address:write"
	PermissionProfileWrite  = "profile:write"

	// Vendor permissions
	PermissionVendorRead     = "vendor:read"
	PermissionVendorWrite    = "vendor:write"
	PermissionProductWrite   = "product:write"
	PermissionPromotionWrite = "promotion:write"

	// Admin permissions
	PermissionReadAdmin    = "admin:read"
	PermissionWriteAdmin   = "admin:write"
	PermissionArticleWrite = "article:write"
)

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionReadAdmin,
			PermissionWriteAdmin,
			PermissionArticleWrite,
			PermissionOrderRead,
			PermissionOrderWrite,
			PermissionWishlistWrite,
			PermissionAddressWrite,
			PermissionProfileWrite,
			PermissionVendorRead,
			PermissionVendorWrite,
			PermissionProductWrite,
			PermissionPromotionWrite,
		}
	case RoleVendor:
		return []string{
			PermissionOrderRead,
			PermissionOrderWrite,
			PermissionWishlistWrite,
			PermissionAddressWrite,
			PermissionProfileWrite,
			PermissionVendorRead,
			PermissionVendorWrite,
			PermissionProductWrite,
			PermissionPromotionWrite,
		}
	case RoleBuyer:
		return []string{
			PermissionOrderRead,
			PermissionOrderWrite,
			PermissionWishlistWrite,
			PermissionAddressWrite,
			PermissionProfileWrite,
		}
	default:
		return []string{}
	}
}

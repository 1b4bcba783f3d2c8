// Package middleware provides the request authorization gates: JWT
// validation, role checks and the approved-vendor gate. All gates fail
// closed; a resolution error never grants access.
package middleware

import (
	"log"
	"strings"

	"agrimart/internal/models"
	"agrimart/internal/repositories"
	"agrimart/internal/utils"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and loads the caller's claims
// into the request context.
type AuthMiddleware struct {
	users repositories.UserRepository
}

func NewAuthMiddleware(users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// Handler checks the Authorization header, token signature and expiry,
// the token version against the database, and the account status. A
// blocked or suspended account loses access immediately even with a
// live token.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}

	_, claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	user, err := m.users.GetByID(claims.UserID)
	if err != nil {
		log.Printf("auth: user %d from token not found: %v", claims.UserID, err)
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	if claims.TokenVersion != user.TokenVersion {
		return response.Error(c, fiber.StatusUnauthorized, "session expired")
	}

	if !user.CanLogin() {
		return response.Error(c, fiber.StatusForbidden, "account is "+string(user.AccountStatus))
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)

	return c.Next()
}

// AdminRequired verifies the caller carries the admin role. Missing or
// malformed claims yield 401, a non-admin role 403.
func AdminRequired(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}
	if claims.Role != models.RoleAdmin {
		return response.Forbidden(c, "admin privileges required")
	}
	return c.Next()
}

// HasPermission returns a middleware that checks one permission. Admins
// pass every check.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok {
			return response.Unauthorized(c)
		}
		if claims.Role == models.RoleAdmin || claims.HasPermission(permission) {
			return c.Next()
		}
		return response.Forbidden(c, "insufficient permissions")
	}
}

// VendorGate loads the caller's vendor record and refuses anything but
// an approved vendor. The response body carries the vendor status so
// the frontend can route a pending vendor to its waiting page.
type VendorGate struct {
	vendors repositories.VendorRepository
}

func NewVendorGate(vendors repositories.VendorRepository) *VendorGate {
	return &VendorGate{vendors: vendors}
}

func (g *VendorGate) Approved(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return response.Unauthorized(c)
	}

	vendor, err := g.vendors.GetByUserID(claims.UserID)
	if err != nil {
		return response.Forbidden(c, "vendor profile required")
	}

	if !vendor.Approved() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  "vendor is not approved",
			"status": vendor.Status,
		})
	}

	c.Locals("vendorID", vendor.ID)
	return c.Next()
}

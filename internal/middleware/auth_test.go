package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"agrimart/internal/models"
	"agrimart/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(user *models.User) error { return m.Called(user).Error(0) }
func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepo) Update(user *models.User) error          { return m.Called(user).Error(0) }
func (m *MockUserRepo) Delete(id uint) error                    { return m.Called(id).Error(0) }
func (m *MockUserRepo) IncrementTokenVersion(userID uint) error { return m.Called(userID).Error(0) }
func (m *MockUserRepo) List(offset, limit int) ([]models.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepo) UpdateStatus(userID uint, status models.AccountStatus, isActive bool, blockedAt *time.Time, blockedReason *string) error {
	return m.Called(userID, status, isActive, blockedAt, blockedReason).Error(0)
}
func (m *MockUserRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) CountCreatedBetween(from, to time.Time) (int64, error) {
	args := m.Called(from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockVendorRepo struct{ mock.Mock }

func (m *MockVendorRepo) Create(vendor *models.Vendor) error { return m.Called(vendor).Error(0) }
func (m *MockVendorRepo) GetByID(id uint) (*models.Vendor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}
func (m *MockVendorRepo) GetByUserID(userID uint) (*models.Vendor, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}
func (m *MockVendorRepo) Update(vendor *models.Vendor) error { return m.Called(vendor).Error(0) }
func (m *MockVendorRepo) SetStatus(id uint, status models.AccountStatus, rejectionReason *string) error {
	return m.Called(id, status, rejectionReason).Error(0)
}
func (m *MockVendorRepo) DeleteWithProducts(id uint) error { return m.Called(id).Error(0) }
func (m *MockVendorRepo) List(status models.AccountStatus, offset, limit int) ([]models.Vendor, int64, error) {
	args := m.Called(status, offset, limit)
	return args.Get(0).([]models.Vendor), args.Get(1).(int64), args.Error(2)
}
func (m *MockVendorRepo) ListRecent(limit int) ([]models.Vendor, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Vendor), args.Error(1)
}
func (m *MockVendorRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockVendorRepo) CountByStatus(status models.AccountStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func signToken(t *testing.T, user *models.User) string {
	t.Helper()
	access, _, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		Permissions:  models.GetDefaultPermissions(user.Role),
		TokenVersion: user.TokenVersion,
	})
	assert.NoError(t, err)
	return access
}

func authedApp(users *MockUserRepo, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/secure", NewAuthMiddleware(users).Handler, handler)
	return app
}

func okHandler(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	buyer := &models.User{
		Email:         "buyer@example.com",
		Role:          models.RoleBuyer,
		AccountStatus: models.StatusApproved,
		IsActive:      true,
		TokenVersion:  1,
	}
	buyer.ID = 5

	t.Run("missing header", func(t *testing.T) {
		app := authedApp(new(MockUserRepo), okHandler)
		req := httptest.NewRequest("GET", "/secure", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		app := authedApp(new(MockUserRepo), okHandler)
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token passes", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", uint(5)).Return(buyer, nil)

		app := authedApp(users, okHandler)
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, buyer))
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("stale token version is refused", func(t *testing.T) {
		token := signToken(t, buyer)

		rotated := *buyer
		rotated.TokenVersion = 2
		users := new(MockUserRepo)
		users.On("GetByID", uint(5)).Return(&rotated, nil)

		app := authedApp(users, okHandler)
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("blocked account is cut off even with a live token", func(t *testing.T) {
		token := signToken(t, buyer)

		blocked := *buyer
		blocked.AccountStatus = models.StatusBlocked
		blocked.IsActive = false
		users := new(MockUserRepo)
		users.On("GetByID", uint(5)).Return(&blocked, nil)

		app := authedApp(users, okHandler)
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("suspended account is cut off", func(t *testing.T) {
		token := signToken(t, buyer)

		suspended := *buyer
		suspended.AccountStatus = models.StatusSuspended
		users := new(MockUserRepo)
		users.On("GetByID", uint(5)).Return(&suspended, nil)

		app := authedApp(users, okHandler)
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestAdminRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	setClaims := func(role string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals("claims", &models.UserClaims{UserID: 1, Role: role})
			return c.Next()
		}
	}
	app.Get("/admin", setClaims(models.RoleAdmin), AdminRequired, okHandler)
	app.Get("/buyer", setClaims(models.RoleBuyer), AdminRequired, okHandler)
	app.Get("/anon", AdminRequired, okHandler)

	for path, want := range map[string]int{
		"/admin": fiber.StatusOK,
		"/buyer": fiber.StatusForbidden,
		"/anon":  fiber.StatusUnauthorized,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		assert.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestVendorGate(t *testing.T) {
	claims := func(c *fiber.Ctx) error {
		c.Locals("claims", &models.UserClaims{UserID: 5, Role: models.RoleVendor})
		return c.Next()
	}

	gatedApp := func(vendors *MockVendorRepo) *fiber.App {
		app := fiber.New()
		app.Get("/vendor", claims, NewVendorGate(vendors).Approved, func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"vendor_id": c.Locals("vendorID")})
		})
		return app
	}

	t.Run("approved vendor passes and gets its id", func(t *testing.T) {
		approved := &models.Vendor{UserID: 5, Status: models.StatusApproved}
		approved.ID = 77
		vendors := new(MockVendorRepo)
		vendors.On("GetByUserID", uint(5)).Return(approved, nil)

		resp, err := gatedApp(vendors).Test(httptest.NewRequest("GET", "/vendor", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("pending vendor is refused", func(t *testing.T) {
		vendors := new(MockVendorRepo)
		vendors.On("GetByUserID", uint(5)).Return(&models.Vendor{UserID: 5, Status: models.StatusPending}, nil)

		resp, err := gatedApp(vendors).Test(httptest.NewRequest("GET", "/vendor", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("suspended vendor is refused", func(t *testing.T) {
		vendors := new(MockVendorRepo)
		vendors.On("GetByUserID", uint(5)).Return(&models.Vendor{UserID: 5, Status: models.StatusSuspended}, nil)

		resp, err := gatedApp(vendors).Test(httptest.NewRequest("GET", "/vendor", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("no vendor profile", func(t *testing.T) {
		vendors := new(MockVendorRepo)
		vendors.On("GetByUserID", uint(5)).Return(nil, assert.AnError)

		resp, err := gatedApp(vendors).Test(httptest.NewRequest("GET", "/vendor", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

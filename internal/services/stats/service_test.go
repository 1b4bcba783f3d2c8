package stats

import (
	"context"
	"testing"
	"time"

	"agrimart/internal/models"

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

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Create(product *models.Product) error { return m.Called(product).Error(0) }
func (m *MockProductRepo) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}
func (m *MockProductRepo) Update(product *models.Product) error { return m.Called(product).Error(0) }
func (m *MockProductRepo) Archive(id uint) error                { return m.Called(id).Error(0) }
func (m *MockProductRepo) List(filter models.ProductFilter, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}
func (m *MockProductRepo) ListByVendor(vendorID uint, offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(vendorID, offset, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}
func (m *MockProductRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) CreateWithItems(order *models.Order) error { return m.Called(order).Error(0) }
func (m *MockOrderRepo) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByUser(userID uint, offset, limit int) ([]models.Order, int64, error) {
	args := m.Called(userID, offset, limit)
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepo) ListByVendor(vendorID uint, offset, limit int) ([]models.Order, int64, error) {
	args := m.Called(vendorID, offset, limit)
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepo) ListRecent(limit int) ([]models.Order, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Order), args.Error(1)
}
func (m *MockOrderRepo) UpdateStatus(id uint, status string) error {
	return m.Called(id, status).Error(0)
}
func (m *MockOrderRepo) CancelAndRestock(order *models.Order) error {
	return m.Called(order).Error(0)
}
func (m *MockOrderRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepo) CountBetween(from, to time.Time) (int64, error) {
	args := m.Called(from, to)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepo) RevenueTotal() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockOrderRepo) RevenueBetween(from, to time.Time) (float64, error) {
	args := m.Called(from, to)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockOrderRepo) VendorStats(vendorID uint, since time.Time) (int64, float64, error) {
	args := m.Called(vendorID, since)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}
func (m *MockOrderRepo) RecentItemsByVendor(vendorID uint, limit int) ([]models.OrderItem, error) {
	args := m.Called(vendorID, limit)
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero previous yields zero, not Inf", 500, 0, 0},
		{"both zero", 0, 0, 0},
		{"from zero current", 0, 80, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GrowthPercent(tt.current, tt.previous), 0.0001)
		})
	}
}

func TestGetAdminStats(t *testing.T) {
	users := new(MockUserRepo)
	vendors := new(MockVendorRepo)
	products := new(MockProductRepo)
	orders := new(MockOrderRepo)

	users.On("Count").Return(int64(120), nil)
	vendors.On("Count").Return(int64(15), nil)
	vendors.On("CountByStatus", models.StatusPending).Return(int64(3), nil)
	products.On("Count").Return(int64(340), nil)
	orders.On("Count").Return(int64(78), nil)
	orders.On("RevenueTotal").Return(1234.56, nil)
	orders.On("ListRecent", 10).Return([]models.Order{{OrderNumber: "ORD-1"}}, nil)
	vendors.On("ListRecent", 10).Return([]models.Vendor{{Name: "Green Acres"}}, nil)

	svc := NewService(users, vendors, products, orders)
	stats, err := svc.GetAdminStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(15), stats.TotalVendors)
	assert.Equal(t, int64(3), stats.PendingVendors)
	assert.Equal(t, int64(340), stats.TotalProducts)
	assert.Equal(t, int64(78), stats.TotalOrders)
	assert.InDelta(t, 1234.56, stats.TotalRevenue, 0.001)
	assert.Len(t, stats.RecentOrders, 1)
	assert.Len(t, stats.RecentVendors, 1)
}

func TestGetDetailedAnalytics(t *testing.T) {
	// Mid-March: current window is Mar 1 to now, previous is Feb 1 to Mar 1.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	currentStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	previousStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	users := new(MockUserRepo)
	orders := new(MockOrderRepo)

	orders.On("RevenueBetween", currentStart, now).Return(300.0, nil)
	orders.On("RevenueBetween", previousStart, currentStart).Return(200.0, nil)
	orders.On("CountBetween", currentStart, now).Return(int64(30), nil)
	orders.On("CountBetween", previousStart, currentStart).Return(int64(20), nil)
	users.On("CountCreatedBetween", currentStart, now).Return(int64(12), nil)
	users.On("CountCreatedBetween", previousStart, currentStart).Return(int64(0), nil)

	svc := NewService(users, new(MockVendorRepo), new(MockProductRepo), orders).(*service)
	svc.now = func() time.Time { return now }

	analytics, err := svc.GetDetailedAnalytics(context.Background())

	assert.NoError(t, err)
	assert.InDelta(t, 50.0, analytics.Revenue.GrowthPercent, 0.001)
	assert.InDelta(t, 50.0, analytics.Orders.GrowthPercent, 0.001)
	// No sign-ups last month: growth reports 0 instead of dividing by zero.
	assert.InDelta(t, 0.0, analytics.NewUsers.GrowthPercent, 0.001)
	assert.Equal(t, now, analytics.GeneratedAt)
	orders.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestGetVendorStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	startOfDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	orders := new(MockOrderRepo)
	orders.On("VendorStats", uint(9), time.Time{}).Return(int64(40), 4000.0, nil)
	orders.On("VendorStats", uint(9), startOfDay).Return(int64(2), 150.0, nil)
	orders.On("VendorStats", uint(9), startOfMonth).Return(int64(11), 900.0, nil)
	orders.On("RecentItemsByVendor", uint(9), 10).Return([]models.OrderItem{{Name: "Honeycrisp Apples"}}, nil)

	svc := NewService(new(MockUserRepo), new(MockVendorRepo), new(MockProductRepo), orders).(*service)
	svc.now = func() time.Time { return now }

	stats, err := svc.GetVendorStats(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, int64(40), stats.TotalOrders)
	assert.InDelta(t, 4000.0, stats.TotalEarnings, 0.001)
	assert.Equal(t, int64(2), stats.DailyOrders)
	assert.Equal(t, int64(11), stats.MonthlyOrders)
	assert.Len(t, stats.RecentItems, 1)
	orders.AssertExpectations(t)
}

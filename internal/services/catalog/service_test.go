package catalog

import (
	"testing"

	apperrors "agrimart/internal/errors"
	"agrimart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func vendorProduct(id, vendorID uint) *models.Product {
	p := &models.Product{VendorID: vendorID, Name: "Yams", Price: 4.0, Stock: 10, Status: models.ProductActive}
	p.ID = id
	return p
}

func TestCreateForVendor(t *testing.T) {
	repo := new(MockProductRepo)
	repo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)

	svc := NewService(repo)
	p, err := svc.CreateForVendor(7, &models.CreateProductInput{
		Name:  "Yams",
		Price: 4.0,
		Stock: 10,
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), p.VendorID)
	assert.Equal(t, models.ProductActive, p.Status)
}

func TestUpdateForVendor(t *testing.T) {
	t.Run("only the set fields change", func(t *testing.T) {
		repo := new(MockProductRepo)
		repo.On("GetByID", uint(1)).Return(vendorProduct(1, 7), nil)
		repo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil)

		price := 5.5
		svc := NewService(repo)
		p, err := svc.UpdateForVendor(7, 1, &models.UpdateProductInput{Price: &price})

		assert.NoError(t, err)
		assert.InDelta(t, 5.5, p.Price, 0.001)
		assert.Equal(t, "Yams", p.Name)
	})

	t.Run("another vendor's product is refused", func(t *testing.T) {
		repo := new(MockProductRepo)
		repo.On("GetByID", uint(1)).Return(vendorProduct(1, 99), nil)

		svc := NewService(repo)
		_, err := svc.UpdateForVendor(7, 1, &models.UpdateProductInput{})
		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestArchiveForVendor(t *testing.T) {
	t.Run("owner can archive", func(t *testing.T) {
		repo := new(MockProductRepo)
		repo.On("GetByID", uint(1)).Return(vendorProduct(1, 7), nil)
		repo.On("Archive", uint(1)).Return(nil)

		svc := NewService(repo)
		assert.NoError(t, svc.ArchiveForVendor(7, 1))
		repo.AssertExpectations(t)
	})

	t.Run("non-owner cannot", func(t *testing.T) {
		repo := new(MockProductRepo)
		repo.On("GetByID", uint(1)).Return(vendorProduct(1, 99), nil)

		svc := NewService(repo)
		assert.ErrorIs(t, svc.ArchiveForVendor(7, 1), apperrors.ErrNotOwner)
		repo.AssertNotCalled(t, "Archive", mock.Anything)
	})
}

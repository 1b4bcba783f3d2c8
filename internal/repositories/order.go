package repositories

import (
	"errors"
	"time"

	"agrimart/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence operations. CreateWithItems
// and Restock run inside transactions because they touch order rows and
// product stock together.
type OrderRepository interface {
	// CreateWithItems inserts the order and its items and decrements the
	// stock of every purchased product atomically.
	CreateWithItems(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	ListByUser(userID uint, offset, limit int) ([]models.Order, int64, error)
	ListByVendor(vendorID uint, offset, limit int) ([]models.Order, int64, error)
	ListRecent(limit int) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
	// CancelAndRestock flips the order to cancelled and returns item
	// quantities to stock in one transaction.
	CancelAndRestock(order *models.Order) error
	Count() (int64, error)
	CountBetween(from, to time.Time) (int64, error)
	RevenueTotal() (float64, error)
	RevenueBetween(from, to time.Time) (float64, error)
	// VendorStats aggregates delivered order items for one vendor since
	// the given time; a zero time means all-time.
	VendorStats(vendorID uint, since time.Time) (int64, float64, error)
	RecentItemsByVendor(vendorID uint, limit int) ([]models.OrderItem, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(userID uint, offset, limit int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Items").Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) ListByVendor(vendorID uint, offset, limit int) ([]models.Order, int64, error) {
	sub := r.db.Model(&models.OrderItem{}).
		Select("DISTINCT order_id").
		Where("vendor_id = ?", vendorID)

	query := r.db.Model(&models.Order{}).Where("id IN (?)", sub)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Items", "vendor_id = ?", vendorID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) ListRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) CancelAndRestock(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("status", models.OrderCancelled).Error; err != nil {
			return err
		}
		for _, item := range order.Items {
			err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) CountBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) RevenueTotal() (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderDelivered).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *orderRepository) RevenueBetween(from, to time.Time) (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", models.OrderDelivered, from, to).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *orderRepository) VendorStats(vendorID uint, since time.Time) (int64, float64, error) {
	query := r.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.vendor_id = ? AND orders.status = ?", vendorID, models.OrderDelivered)
	if !since.IsZero() {
		query = query.Where("orders.created_at >= ?", since)
	}

	var result struct {
		Count int64
		Sum   float64
	}
	err := query.Select("COUNT(DISTINCT order_items.order_id) as count, COALESCE(SUM(order_items.subtotal), 0) as sum").
		Scan(&result).Error
	return result.Count, result.Sum, err
}

func (r *orderRepository) RecentItemsByVendor(vendorID uint, limit int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("vendor_id = ?", vendorID).
		Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

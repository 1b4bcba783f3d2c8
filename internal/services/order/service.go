// Package order implements checkout and the order lifecycle.
package order

import (
	"context"
	"time"

	apperrors "agrimart/internal/errors"
	"agrimart/internal/models"
	"agrimart/internal/repositories"
	"agrimart/internal/services/payment"

	"github.com/google/uuid"
)

const (
	minQuantity = 1
	maxQuantity = 99
	deliveryFee = 5.0
)

type Service interface {
	Checkout(ctx context.Context, userID uint, input *models.CheckoutInput) (*models.Order, error)
	Get(ctx context.Context, userID uint, orderID uint, isAdmin bool) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Order, int64, error)
	ListByVendor(ctx context.Context, vendorID uint, offset, limit int) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) (*models.Order, error)
	UpdateStatusForVendor(ctx context.Context, vendorID, orderID uint, status string) (*models.Order, error)
	Cancel(ctx context.Context, userID, orderID uint) (*models.Order, error)
}

type service struct {
	orderRepo     repositories.OrderRepository
	productRepo   repositories.ProductRepository
	addressRepo   repositories.AddressRepository
	promotionRepo repositories.PromotionRepository
	payments      payment.Service
	now           func() time.Time
}

func NewService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	addressRepo repositories.AddressRepository,
	promotionRepo repositories.PromotionRepository,
	payments payment.Service,
) Service {
	return &service{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		addressRepo:   addressRepo,
		promotionRepo: promotionRepo,
		payments:      payments,
		now:           time.Now,
	}
}

// Checkout validates the cart, applies an optional discount code,
// charges the card and creates the order. Stock decrement and order
// insert share one transaction inside the repository; the quantity and
// stock checks here are a fast-fail pass before any write happens.
func (s *service) Checkout(ctx context.Context, userID uint, input *models.CheckoutInput) (*models.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	address, err := s.addressRepo.GetByID(input.AddressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity < minQuantity || line.Quantity > maxQuantity {
			return nil, apperrors.ErrInvalidQuantity
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Status != models.ProductActive || product.Stock < line.Quantity {
			return nil, apperrors.ErrOutOfStock
		}
		lineTotal := product.Price * float64(line.Quantity)
		subtotal += lineTotal
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			VendorID:  product.VendorID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Subtotal:  lineTotal,
		})
	}

	var discountAmount float64
	var discountID uint
	if input.DiscountCode != "" {
		discount, err := s.promotionRepo.GetDiscountByCode(input.DiscountCode)
		if err != nil {
			return nil, apperrors.ErrDiscountNotUsable
		}
		if !discount.Usable(s.now()) {
			return nil, apperrors.ErrDiscountNotUsable
		}
		discountAmount = subtotal * float64(discount.Percentage) / 100
		discountID = discount.ID
	}

	total := subtotal - discountAmount + deliveryFee

	order := &models.Order{
		OrderNumber:  uuid.NewString(),
		UserID:       userID,
		AddressID:    address.ID,
		Status:       models.OrderPending,
		Subtotal:     subtotal,
		DeliveryFee:  deliveryFee,
		Discount:     discountAmount,
		Total:        total,
		DiscountCode: input.DiscountCode,
		Items:        items,
	}

	ref, err := s.payments.Charge(input.CardToken, total, "agrimart order "+order.OrderNumber)
	if err != nil {
		return nil, err
	}
	order.PaymentRef = ref

	if err := s.orderRepo.CreateWithItems(order); err != nil {
		return nil, err
	}

	if discountID != 0 {
		// Usage counter is best-effort once the order exists; a failed
		// bump must not undo a paid order.
		_ = s.promotionRepo.IncrementUsage(discountID)
	}

	return order, nil
}

func (s *service) Get(ctx context.Context, userID uint, orderID uint, isAdmin bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	return order, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(userID, offset, limit)
}

func (s *service) ListByVendor(ctx context.Context, vendorID uint, offset, limit int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByVendor(vendorID, offset, limit)
}

// UpdateStatus is the unscoped transition used by admin tooling.
func (s *service) UpdateStatus(ctx context.Context, orderID uint, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	return s.applyStatus(order, status)
}

// UpdateStatusForVendor only transitions orders carrying at least one
// of the vendor's items.
func (s *service) UpdateStatusForVendor(ctx context.Context, vendorID, orderID uint, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	sells := false
	for _, item := range order.Items {
		if item.VendorID == vendorID {
			sells = true
			break
		}
	}
	if !sells {
		return nil, apperrors.ErrNotOwner
	}
	return s.applyStatus(order, status)
}

func (s *service) applyStatus(order *models.Order, status string) (*models.Order, error) {
	if !models.CanTransitionOrder(order.Status, status) {
		return nil, apperrors.ErrInvalidOrderStatus
	}
	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Cancel is a buyer action; only pending orders qualify and the items
// are restocked.
func (s *service) Cancel(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}
	if order.Status != models.OrderPending {
		return nil, apperrors.ErrOrderNotCancellable
	}
	if err := s.orderRepo.CancelAndRestock(order); err != nil {
		return nil, err
	}
	order.Status = models.OrderCancelled
	return order, nil
}

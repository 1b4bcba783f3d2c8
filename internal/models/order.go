package models

import "gorm.io/gorm"

// Order statuses follow the fulfilment lifecycle; cancellation is only
// reachable from pending.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// orderTransitions lists the legal fulfilment moves.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

// CanTransitionOrder reports whether an order may move between statuses.
func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	OrderNumber  string      `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID       uint        `gorm:"index;not null" json:"user_id"`
	AddressID    uint        `gorm:"not null" json:"address_id"`
	Status       string      `gorm:"default:'pending'" json:"status"`
	Subtotal     float64     `json:"subtotal"`
	DeliveryFee  float64     `json:"delivery_fee"`
	Discount     float64     `json:"discount"`
	Total        float64     `json:"total"`
	DiscountCode string      `json:"discount_code,omitempty"`
	PaymentRef   string      `json:"payment_ref,omitempty"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	VendorID  uint    `gorm:"index;not null" json:"vendor_id"`
	Name      string  `json:"name"` // product name at time of purchase
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
}

type CheckoutLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CheckoutInput struct {
	AddressID    uint           `json:"address_id"`
	Lines        []CheckoutLine `json:"lines"`
	DiscountCode string         `json:"discount_code"`
	CardToken    string         `json:"card_token"`
}

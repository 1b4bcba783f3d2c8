package handlers

import (
	"agrimart/internal/models"
	"agrimart/internal/services/order"
	"agrimart/internal/utils/pagination"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input models.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if len(input.Lines) == 0 {
		return response.BadRequest(c, "order must contain at least one item")
	}

	o, err := h.orderService.Checkout(c.Context(), userID, &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed",
		"data":    o,
	})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	claims := c.Locals("claims").(*models.UserClaims)
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	o, err := h.orderService.Get(c.Context(), userID, orderID, claims.Role == models.RoleAdmin)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Order retrieved", o)
}

func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := pagination.ParseFromRequest(c)

	orders, total, err := h.orderService.ListByUser(c.Context(), userID, p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, orders))
}

// ListVendorOrders returns orders containing at least one item sold by
// the current vendor, with items trimmed to that vendor's lines.
func (h *OrderHandler) ListVendorOrders(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	p := pagination.ParseFromRequest(c)

	orders, total, err := h.orderService.ListByVendor(c.Context(), vendorID, p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, orders))
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	o, err := h.orderService.UpdateStatus(c.Context(), orderID, input.Status)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Order status updated", o)
}

// UpdateVendorStatus is the vendor-facing variant; the order must
// contain at least one of the vendor's items.
func (h *OrderHandler) UpdateVendorStatus(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	o, err := h.orderService.UpdateStatusForVendor(c.Context(), vendorID, orderID, input.Status)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Order status updated", o)
}

func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	o, err := h.orderService.Cancel(c.Context(), userID, orderID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Order cancelled", o)
}

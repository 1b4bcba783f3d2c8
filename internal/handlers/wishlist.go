package handlers

import (
	"agrimart/internal/services/wishlist"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	wishlistService wishlist.Service
}

func NewWishlistHandler(wishlistService wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	items, err := h.wishlistService.List(c.Context(), userID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Wishlist retrieved", items)
}

func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return response.BadRequest(c, "invalid product id")
	}

	if err := h.wishlistService.Add(c.Context(), userID, productID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Added to wishlist", nil)
}

func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return response.BadRequest(c, "invalid product id")
	}

	if err := h.wishlistService.Remove(c.Context(), userID, productID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Removed from wishlist", nil)
}

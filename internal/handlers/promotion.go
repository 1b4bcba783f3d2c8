package handlers

import (
	"agrimart/internal/models"
	"agrimart/internal/services/promotion"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PromotionHandler struct {
	promotionService promotion.Service
}

func NewPromotionHandler(promotionService promotion.Service) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

func (h *PromotionHandler) ListDiscounts(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	discounts, err := h.promotionService.ListDiscounts(c.Context(), vendorID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Discounts retrieved", discounts)
}

func (h *PromotionHandler) CreateDiscount(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var input models.CreateDiscountInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	d, err := h.promotionService.CreateDiscount(c.Context(), vendorID, &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Discount created",
		"data":    d,
	})
}

func (h *PromotionHandler) DeactivateDiscount(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	discountID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid discount id")
	}

	if err := h.promotionService.DeactivateDiscount(c.Context(), vendorID, discountID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Discount deactivated", nil)
}

func (h *PromotionHandler) ListFlashSales(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	sales, err := h.promotionService.ListFlashSales(c.Context(), vendorID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Flash sales retrieved", sales)
}

func (h *PromotionHandler) CreateFlashSale(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var input models.CreateFlashSaleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	sale, err := h.promotionService.CreateFlashSale(c.Context(), vendorID, &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Flash sale created",
		"data":    sale,
	})
}

func (h *PromotionHandler) DeleteFlashSale(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	saleID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid flash sale id")
	}

	if err := h.promotionService.DeleteFlashSale(c.Context(), vendorID, saleID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Flash sale deleted", nil)
}

package handlers

import (
	"strconv"

	"agrimart/internal/models"
	"agrimart/internal/services/catalog"
	"agrimart/internal/utils/pagination"
	"agrimart/internal/utils/response"
	"agrimart/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	catalogService catalog.Service
}

func NewProductHandler(catalogService catalog.Service) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func parseFilter(c *fiber.Ctx) models.ProductFilter {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if v, err := strconv.ParseUint(c.Query("vendor_id"), 10, 32); err == nil {
		filter.VendorID = uint(v)
	}
	if c.Query("organic") == "true" {
		organic := true
		filter.Organic = &organic
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = v
	}
	return filter
}

// List is the public storefront listing. Only active products are returned.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	products, total, err := h.catalogService.List(parseFilter(c), p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, products))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid product id")
	}

	product, err := h.catalogService.Get(productID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Product retrieved", product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if fields := validation.Struct(&input); fields != nil {
		return response.ValidationErrors(c, fields)
	}

	product, err := h.catalogService.CreateForVendor(vendorID, &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"data":    product,
	})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid product id")
	}

	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	product, err := h.catalogService.UpdateForVendor(vendorID, productID, &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Product updated", product)
}

func (h *ProductHandler) Archive(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid product id")
	}

	if err := h.catalogService.ArchiveForVendor(vendorID, productID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Product archived", nil)
}

func (h *ProductHandler) ListMine(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)
	p := pagination.ParseFromRequest(c)

	products, total, err := h.catalogService.ListByVendor(vendorID, p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, products))
}

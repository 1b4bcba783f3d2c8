package handlers

import (
	"agrimart/internal/models"
	"agrimart/internal/services/vendor"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type VendorHandler struct {
	vendorService vendor.Service
}

func NewVendorHandler(vendorService vendor.Service) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Apply registers the current user as a vendor. The profile starts out
// pending and stays that way until an admin approves it.
func (h *VendorHandler) Apply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input models.RegisterVendorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v, err := h.vendorService.Register(userID, &input)
	if err != nil {
		if err == vendor.ErrAlreadyVendor {
			return response.Error(c, fiber.StatusConflict, err.Error())
		}
		return response.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Vendor application submitted",
		"data":    v,
	})
}

func (h *VendorHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	v, err := h.vendorService.GetByUserID(userID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Vendor profile retrieved", v)
}

func (h *VendorHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input models.UpdateVendorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v, err := h.vendorService.UpdateProfile(userID, &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Vendor profile updated", v)
}

package handlers

import (
	"agrimart/internal/models"
	"agrimart/internal/services/address"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	addressService address.Service
}

func NewAddressHandler(addressService address.Service) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	addresses, err := h.addressService.List(c.Context(), userID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Addresses retrieved", addresses)
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input models.AddressInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	a, err := h.addressService.Create(c.Context(), userID, &input)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Address created",
		"data":    a,
	})
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid address id")
	}

	var input models.AddressInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	a, err := h.addressService.Update(c.Context(), userID, addressID, &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Address updated", a)
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid address id")
	}

	if err := h.addressService.Delete(c.Context(), userID, addressID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Address deleted", nil)
}

func (h *AddressHandler) SetDefault(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid address id")
	}

	if err := h.addressService.SetDefault(c.Context(), userID, addressID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Default address updated", nil)
}

package handlers

import (
	"agrimart/internal/services/user"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	u, err := h.userService.GetByID(userID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile retrieved", u)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input user.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	u, err := h.userService.UpdateProfile(userID, input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile updated", u)
}

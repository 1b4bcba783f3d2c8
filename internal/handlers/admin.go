package handlers

import (
	"strconv"

	"agrimart/internal/models"
	"agrimart/internal/services/admin"
	"agrimart/internal/utils/pagination"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	adminService admin.Service
}

func NewAdminHandler(adminService admin.Service) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (h *AdminHandler) ListVendors(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	status := models.AccountStatus(c.Query("status"))
	if status != "" && !models.ValidStatus(status) {
		return response.BadRequest(c, "invalid status filter")
	}

	vendors, total, err := h.adminService.ListVendors(c.Context(), status, p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, vendors))
}

func (h *AdminHandler) ApproveVendor(c *fiber.Ctx) error {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid vendor id")
	}

	v, err := h.adminService.ApproveVendor(c.Context(), vendorID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Vendor approved", v)
}

func (h *AdminHandler) RejectVendor(c *fiber.Ctx) error {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid vendor id")
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v, err := h.adminService.RejectVendor(c.Context(), vendorID, input.Reason)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Vendor application rejected", v)
}

func (h *AdminHandler) SetVendorStatus(c *fiber.Ctx) error {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid vendor id")
	}

	var input struct {
		Status models.AccountStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v, err := h.adminService.SetVendorStatus(c.Context(), vendorID, input.Status)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Vendor status updated", v)
}

// ResendNotification acknowledges a notification resend request.
// Delivery itself is handled outside this service; the endpoint exists
// so the back-office UI gets a deterministic response.
func (h *AdminHandler) ResendNotification(c *fiber.Ctx) error {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid vendor id")
	}
	return response.Success(c, "Notification queued", fiber.Map{"vendor_id": vendorID})
}

func (h *AdminHandler) DeleteVendor(c *fiber.Ctx) error {
	vendorID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid vendor id")
	}

	if err := h.adminService.DeleteVendor(c.Context(), vendorID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Vendor deleted", nil)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	users, total, err := h.adminService.ListUsers(c.Context(), p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, users))
}

func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	var input models.UpdateUserStatusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.UserID == 0 {
		return response.BadRequest(c, "userId is required")
	}

	u, err := h.adminService.UpdateUserStatus(c.Context(), &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "User status updated", u)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "invalid user id")
	}

	if err := h.adminService.DeleteUser(c.Context(), userID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "User deleted", nil)
}

package handlers

import (
	"agrimart/internal/repositories"
	"agrimart/internal/services/stats"
	"agrimart/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	statsService stats.Service
}

func NewDashboardHandler(statsService stats.Service) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

func (h *DashboardHandler) AdminStats(c *fiber.Ctx) error {
	s, err := h.statsService.GetAdminStats(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Stats retrieved", s)
}

func (h *DashboardHandler) AdminAnalytics(c *fiber.Ctx) error {
	a, err := h.statsService.GetDetailedAnalytics(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Analytics retrieved", a)
}

func (h *DashboardHandler) VendorStats(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	s, err := h.statsService.GetVendorStats(c.Context(), vendorID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Vendor stats retrieved", s)
}

// CacheStats exposes redis server info for the ops dashboard. Returns
// an empty payload when the cache is not configured.
func (h *DashboardHandler) CacheStats(c *fiber.Ctx) error {
	info, err := repositories.Cache.Stats(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to read cache stats")
	}
	return response.Success(c, "Cache stats retrieved", info)
}

func (h *DashboardHandler) FlushCache(c *fiber.Ctx) error {
	if err := repositories.Cache.FlushAll(c.Context()); err != nil {
		return response.ServerError(c, "Failed to flush cache")
	}
	return response.Success(c, "Cache flushed", nil)
}

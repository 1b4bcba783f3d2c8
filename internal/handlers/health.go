package handlers

import (
	"agrimart/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// Health reports liveness plus the state of the datastore connections.
func Health(c *fiber.Ctx) error {
	dbStatus := "ok"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	cacheStatus := "ok"
	if _, err := repositories.Cache.Stats(c.Context()); err != nil {
		cacheStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   "up",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}

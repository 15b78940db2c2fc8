package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"legalclarity/internal/services"
)

// HealthHandler serves GET /healthz.
type HealthHandler struct {
	DB       *gorm.DB
	Adapters services.AdapterStatus
}

// Health reports database reachability and adapter configuration.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.DB, h.Adapters)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}

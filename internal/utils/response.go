package utils

import (
	"github.com/gofiber/fiber/v2"
)

// JSONError sends the application's JSON error shape.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// DocumentCreated sends the success body for the analysis endpoints.
func DocumentCreated(c *fiber.Ctx, documentID uint64) error {
	return c.JSON(fiber.Map{
		"success":         true,
		"new_document_id": documentID,
	})
}

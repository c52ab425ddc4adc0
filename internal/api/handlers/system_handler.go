package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// NotImplemented answers for API surfaces that exist in the product plan but
// have no backend yet (auth, inventory, reservations, locations, geocoding).
func NotImplemented(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": name + " endpoint - not yet implemented",
		})
	}
}

// MethodNotAllowed covers wrong methods and unknown paths under /api/chat/.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
		"error": "Method not allowed",
	})
}

// APINotFound is the JSON 404 for unknown paths under /api/.
func APINotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Endpoint not found",
	})
}

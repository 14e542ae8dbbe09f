package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// RequestFilter logs every request and rejects clients that send no
// User-Agent header.
func RequestFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userAgent := c.Get(fiber.HeaderUserAgent)
		log.Printf("[SECURITY] %s %s from %s | Origin: %s | User-Agent: %s",
			c.Method(), c.Path(), c.IP(), c.Get(fiber.HeaderOrigin), userAgent)

		if userAgent == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User-Agent required",
			})
		}

		return c.Next()
	}
}

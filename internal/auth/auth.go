// Package auth extracts the identity established by the upstream
// authentication layer. The portal itself performs no credential checks;
// the reverse proxy in front of it sets X-User-ID on every request it has
// authenticated.
package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const userHeader = "X-User-ID"

const localsKey = "auth.userID"

// RequireUser rejects requests that carry no authenticated identity and
// stores the user id in the request locals for handlers downstream.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(userHeader)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid user identity",
			})
		}
		c.Locals(localsKey, id)
		return c.Next()
	}
}

// UserID returns the authenticated user id, or 0 when RequireUser did not
// run on the route.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localsKey).(int64)
	return id
}

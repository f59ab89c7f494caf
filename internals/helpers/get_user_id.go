package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken returns the user id the auth middleware resolved from
// the verified token. Handlers must use this — never a client-supplied id.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("user_id").(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID missing from token")
	}
	return id, nil
}

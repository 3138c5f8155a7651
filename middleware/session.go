package middleware

import (
	"fyyur/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session exposes the session store to handlers for flash messages.
func Session(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(constants.LOCAL_SESSION, store)
		return c.Next()
	}
}

package middleware

import (
	"time"

	"fyyur/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const HeaderRequestID = "X-Request-ID"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(constants.LOCAL_REQUEST_ID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// Logger writes one line per request. It runs the error handler itself so
// the logged status matches what the client receives.
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Error().Err(chainErr)
		}
		requestID, _ := c.Locals(constants.LOCAL_REQUEST_ID).(string)
		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", path).
			Int("status", status).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.IP()).
			Msg("HTTP Request")
		return nil
	}
}

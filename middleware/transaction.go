package middleware

import (
	"fyyur/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Transaction opens one database transaction per request and binds it to
// Locals. It commits only when the handler chain returned no error and the
// response status is below 400; every other outcome, panics included, rolls
// back.
func Transaction(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx := db.WithContext(c.UserContext()).Begin()
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("begin transaction")
			return fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}

		done := false
		defer func() {
			if !done {
				if err := tx.Rollback().Error; err != nil {
					log.Warn().Err(err).Str("path", c.Path()).Msg("rollback transaction")
				}
			}
			c.Locals(constants.LOCAL_DB, nil)
		}()

		c.Locals(constants.LOCAL_DB, tx)

		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			return nil
		}

		if err := tx.Commit().Error; err != nil {
			log.Error().Err(err).Str("path", c.Path()).Msg("commit transaction")
			return fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
		}
		done = true
		return nil
	}
}

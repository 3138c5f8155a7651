package helper

import (
	"errors"
	"fyyur/constants"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var ErrNoSession = errors.New("no database session bound to request")

// GetDB returns the transaction opened for the current request.
func GetDB(c *fiber.Ctx) (*gorm.DB, error) {
	tx, ok := c.Locals(constants.LOCAL_DB).(*gorm.DB)
	if !ok || tx == nil {
		return nil, ErrNoSession
	}
	return tx, nil
}

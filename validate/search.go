package validate

import (
	"strings"

	"fyyur/constants"
	"fyyur/model"

	"github.com/gofiber/fiber/v2"
)

const LOCAL_SEARCH = "inputSearch"

// Search accepts {"search_term": "..."} as JSON or a form field. A blank
// term is passed on as "" and matches nothing.
func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SearchInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, constants.ERROR_INPUT)
			}
		}
		input.SearchTerm = strings.TrimSpace(input.SearchTerm)

		c.Locals(LOCAL_SEARCH, input)
		return c.Next()
	}
}

package validate

import (
	"fmt"

	"fyyur/constants"
	"fyyur/helper"
	"fyyur/model"

	"github.com/gofiber/fiber/v2"
)

const (
	LOCAL_CREATE_VENUE = "inputCreateVenue"
	LOCAL_EDIT_VALUES  = "inputEditValues"
)

func CreateVenue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVenueInput
		if err := c.BodyParser(&input); err != nil {
			helper.FlashError(c, "An error occurred. Venue could not be listed.")
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", constants.ERROR_INPUT, err.Error()))
		}
		if err := Struct(input); err != nil {
			helper.FlashError(c, listingFailed("Venue", input.Name))
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		c.Locals(LOCAL_CREATE_VENUE, input)
		return c.Next()
	}
}

func EditVenue(key string) fiber.Handler {
	return editValues(key, helper.VenueFields)
}

func editValues[T any](key string, fields map[string]helper.FieldSetter[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParseId(c, key)
		if err != nil {
			return err
		}
		values, err := bodyValues(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if len(values) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, constants.EDIT_NOTHING_TO_UPDATE)
		}
		for field := range values {
			if _, ok := fields[field]; !ok {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", constants.EDIT_FIELD_UNKNOWN, field))
			}
		}

		c.Locals(constants.LOCAL_INPUT_ID, id)
		c.Locals(LOCAL_EDIT_VALUES, values)
		return c.Next()
	}
}

// EditValues returns the field map stored by EditVenue / EditArtist.
func EditValues(c *fiber.Ctx) (map[string]any, error) {
	values, ok := c.Locals(LOCAL_EDIT_VALUES).(map[string]any)
	if !ok {
		return nil, fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	return values, nil
}

func listingFailed(kind, name string) string {
	if name == "" {
		return fmt.Sprintf("An error occurred. %s could not be listed.", kind)
	}
	return fmt.Sprintf("An error occurred. %s %s could not be listed.", kind, name)
}

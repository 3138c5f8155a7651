package validate

import (
	"fmt"

	"fyyur/constants"
	"fyyur/helper"
	"fyyur/model"

	"github.com/gofiber/fiber/v2"
)

const LOCAL_CREATE_ARTIST = "inputCreateArtist"

func CreateArtist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateArtistInput
		if err := c.BodyParser(&input); err != nil {
			helper.FlashError(c, "An error occurred. Artist could not be listed.")
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", constants.ERROR_INPUT, err.Error()))
		}
		if err := Struct(input); err != nil {
			helper.FlashError(c, listingFailed("Artist", input.Name))
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		c.Locals(LOCAL_CREATE_ARTIST, input)
		return c.Next()
	}
}

func EditArtist(key string) fiber.Handler {
	return editValues(key, helper.ArtistFields)
}

package validate

import (
	"errors"
	"fmt"

	"fyyur/constants"
	"fyyur/helper"
	"fyyur/model"
	"fyyur/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const LOCAL_CREATE_SHOW = "inputCreateShow"

const showListingFailed = "An error occurred. Show could not be listed."

// CreateShow validates the body and checks that the referenced artist and
// venue exist. The handler receives a ready model.Show.
func CreateShow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowInput
		if err := c.BodyParser(&input); err != nil {
			helper.FlashError(c, showListingFailed)
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", constants.ERROR_INPUT, err.Error()))
		}
		if err := Struct(input); err != nil {
			helper.FlashError(c, showListingFailed)
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		startTime, err := utils.ParseDateTime(input.StartTime)
		if err != nil {
			helper.FlashError(c, showListingFailed)
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("start_time: %s", err.Error()))
		}

		tx, err := helper.GetDB(c)
		if err != nil {
			return err
		}
		if err := mustExist(tx, &model.Artist{}, input.ArtistID, "artist_id", constants.ARTIST_NOT_FOUND); err != nil {
			helper.FlashError(c, showListingFailed)
			return err
		}
		if err := mustExist(tx, &model.Venue{}, input.VenueID, "venue_id", constants.VENUE_NOT_FOUND); err != nil {
			helper.FlashError(c, showListingFailed)
			return err
		}

		c.Locals(LOCAL_CREATE_SHOW, model.Show{
			ArtistID:  input.ArtistID,
			VenueID:   input.VenueID,
			StartTime: startTime,
		})
		return c.Next()
	}
}

func mustExist(tx *gorm.DB, dest interface{}, id uint, key, message string) error {
	err := tx.Select("id").First(dest, id).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", key, message))
	}
	return fmt.Errorf("lookup %s %d: %w", key, id, err)
}

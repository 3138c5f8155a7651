package handler

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"fyyur/constants"
	"fyyur/helper"
	"fyyur/model"
	"fyyur/utils"
	"fyyur/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// UploadVenueImage replaces a venue's image_link with an uploaded picture.
func UploadVenueImage(uploader helper.ImageUploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return uploadImage[model.Venue](c, uploader, constants.VENUE_NOT_FOUND, "venues")
	}
}

// UploadArtistImage replaces an artist's image_link with an uploaded picture.
func UploadArtistImage(uploader helper.ImageUploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return uploadImage[model.Artist](c, uploader, constants.ARTIST_NOT_FOUND, "artists")
	}
}

func uploadImage[T model.Venue | model.Artist](c *fiber.Ctx, uploader helper.ImageUploader, notFound, prefix string) error {
	if uploader == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, constants.IMAGE_UPLOAD_DISABLED)
	}
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	entity, err := findByID[T](tx, id, notFound)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: image", constants.ERROR_INPUT))
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !slices.Contains(constants.IMAGE_EXTENSIONS, ext) {
		return fiber.NewError(fiber.StatusBadRequest, constants.IMAGE_FORMAT_UNSUPPORTED)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: image", constants.ERROR_INPUT))
	}
	defer file.Close()

	slug := entitySlug(entity)
	url, err := uploader.UploadImage(c.UserContext(), file, slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("upload image")
		return fiber.NewError(fiber.StatusBadGateway, constants.IMAGE_UPLOAD_FAILED)
	}
	if err := tx.Model(entity).Update("image_link", url).Error; err != nil {
		return fmt.Errorf("update image_link of %s %d: %w", prefix, id, err)
	}

	if utils.WantsJSON(c) {
		return utils.SuccessResponse(c, fiber.StatusOK, entity)
	}
	helper.FlashSuccess(c, "Image was successfully uploaded!")
	return c.Redirect(fmt.Sprintf("/%s/%d", prefix, id), fiber.StatusSeeOther)
}

func entitySlug(entity any) string {
	switch e := entity.(type) {
	case *model.Venue:
		return e.Slug
	case *model.Artist:
		return e.Slug
	}
	return ""
}

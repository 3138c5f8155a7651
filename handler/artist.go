package handler

import (
	"fmt"

	"fyyur/constants"
	"fyyur/helper"
	"fyyur/model"
	"fyyur/utils"
	"fyyur/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm/clause"
)

func GetArtists(c *fiber.Ctx) error {
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	artists := []model.ArtistRow{}
	if err := tx.Model(&model.Artist{}).Select("id", "name").Order("id").Scan(&artists).Error; err != nil {
		return fmt.Errorf("list artists: %w", err)
	}
	return render(c, fiber.StatusOK, "pages/artists", fiber.Map{"Artists": artists}, artists)
}

func SearchArtists(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.LOCAL_SEARCH).(model.SearchInput)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	result, err := search(tx, &model.Artist{}, "artist_id", input.SearchTerm)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "pages/search_artists", fiber.Map{
		"Results":    result,
		"SearchTerm": input.SearchTerm,
	}, result)
}

func GetArtistById(c *fiber.Ctx) error {
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	artist, err := findByID[model.Artist](tx, id, constants.ARTIST_NOT_FOUND)
	if err != nil {
		return err
	}
	var shows []model.Show
	if err := tx.Preload("Venue").Where("artist_id = ?", id).Order("start_time").Find(&shows).Error; err != nil {
		return fmt.Errorf("list shows of artist %d: %w", id, err)
	}

	past, upcoming := model.SplitShows(shows, now())
	detail := model.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return render(c, fiber.StatusOK, "pages/show_artist", fiber.Map{"Artist": detail}, detail)
}

func CreateArtistForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "forms/new_artist", nil, fiber.Map{})
}

func CreateArtist(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.LOCAL_CREATE_ARTIST).(model.CreateArtistInput)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	var artist model.Artist
	if err := copier.Copy(&artist, &input); err != nil {
		return fmt.Errorf("copy artist input: %w", err)
	}
	artist.Slug, err = helper.GenerateUniqueSlug(tx, &model.Artist{}, artist.Name, 0)
	if err != nil {
		return err
	}
	if err := tx.Omit(clause.Associations).Create(&artist).Error; err != nil {
		helper.FlashError(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", input.Name))
		return fmt.Errorf("create artist: %w", err)
	}

	helper.FlashSuccess(c, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	return utils.SuccessResponse(c, fiber.StatusCreated, artist)
}

func DeleteArtist(c *fiber.Ctx) error {
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	artist, err := findByID[model.Artist](tx, id, constants.ARTIST_NOT_FOUND)
	if err != nil {
		return err
	}
	if err := tx.Where("artist_id = ?", id).Delete(&model.Show{}).Error; err != nil {
		return fmt.Errorf("delete shows of artist %d: %w", id, err)
	}
	if err := tx.Delete(artist).Error; err != nil {
		return fmt.Errorf("delete artist %d: %w", id, err)
	}

	helper.FlashSuccess(c, fmt.Sprintf("Artist %s was successfully deleted.", artist.Name))
	return c.Redirect("/", fiber.StatusSeeOther)
}

func EditArtistForm(c *fiber.Ctx) error {
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	artist, err := findByID[model.Artist](tx, id, constants.ARTIST_NOT_FOUND)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "forms/edit_artist", fiber.Map{"Artist": artist}, artist)
}

func EditArtist(c *fiber.Ctx) error {
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	values, err := validate.EditValues(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	artist, err := findByID[model.Artist](tx, id, constants.ARTIST_NOT_FOUND)
	if err != nil {
		return err
	}
	oldName := artist.Name
	if err := helper.ApplyFields(artist, helper.ArtistFields, values); err != nil {
		return editError(err)
	}
	if err := validateAs[model.CreateArtistInput](artist); err != nil {
		return err
	}
	if artist.Name != oldName {
		if artist.Slug, err = helper.GenerateUniqueSlug(tx, &model.Artist{}, artist.Name, artist.ID); err != nil {
			return err
		}
	}
	if err := tx.Omit(clause.Associations).Save(artist).Error; err != nil {
		return fmt.Errorf("update artist %d: %w", id, err)
	}

	helper.FlashSuccess(c, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	return c.Redirect(fmt.Sprintf("/artists/%d", artist.ID), fiber.StatusSeeOther)
}

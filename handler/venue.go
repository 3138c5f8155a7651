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

func GetVenues(c *fiber.Ctx) error {
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	var venues []model.Venue
	if err := tx.Select("id", "name", "city", "state").Order("state").Order("city").Order("id").Find(&venues).Error; err != nil {
		return fmt.Errorf("list venues: %w", err)
	}
	counts, err := upcomingCounts(tx, "venue_id", now())
	if err != nil {
		return err
	}

	areas := []model.VenueArea{}
	index := map[[2]string]int{}
	for _, venue := range venues {
		key := [2]string{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, model.VenueArea{City: venue.City, State: venue.State, Venues: []model.VenueRow{}})
		}
		areas[i].Venues = append(areas[i].Venues, model.VenueRow{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: counts[venue.ID],
		})
	}

	return render(c, fiber.StatusOK, "pages/venues", fiber.Map{"Areas": areas}, areas)
}

func SearchVenues(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.LOCAL_SEARCH).(model.SearchInput)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	result, err := search(tx, &model.Venue{}, "venue_id", input.SearchTerm)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "pages/search_venues", fiber.Map{
		"Results":    result,
		"SearchTerm": input.SearchTerm,
	}, result)
}

func GetVenueById(c *fiber.Ctx) error {
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	venue, err := findByID[model.Venue](tx, id, constants.VENUE_NOT_FOUND)
	if err != nil {
		return err
	}
	var shows []model.Show
	if err := tx.Preload("Artist").Where("venue_id = ?", id).Order("start_time").Find(&shows).Error; err != nil {
		return fmt.Errorf("list shows of venue %d: %w", id, err)
	}

	past, upcoming := model.SplitShows(shows, now())
	detail := model.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return render(c, fiber.StatusOK, "pages/show_venue", fiber.Map{"Venue": detail}, detail)
}

func CreateVenueForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "forms/new_venue", nil, fiber.Map{})
}

func CreateVenue(c *fiber.Ctx) error {
	input, ok := c.Locals(validate.LOCAL_CREATE_VENUE).(model.CreateVenueInput)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	var venue model.Venue
	if err := copier.Copy(&venue, &input); err != nil {
		return fmt.Errorf("copy venue input: %w", err)
	}
	venue.Slug, err = helper.GenerateUniqueSlug(tx, &model.Venue{}, venue.Name, 0)
	if err != nil {
		return err
	}
	if err := tx.Omit(clause.Associations).Create(&venue).Error; err != nil {
		helper.FlashError(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", input.Name))
		return fmt.Errorf("create venue: %w", err)
	}

	helper.FlashSuccess(c, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
	return utils.SuccessResponse(c, fiber.StatusCreated, venue)
}

func DeleteVenue(c *fiber.Ctx) error {
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	venue, err := findByID[model.Venue](tx, id, constants.VENUE_NOT_FOUND)
	if err != nil {
		return err
	}
	if err := tx.Where("venue_id = ?", id).Delete(&model.Show{}).Error; err != nil {
		return fmt.Errorf("delete shows of venue %d: %w", id, err)
	}
	if err := tx.Delete(venue).Error; err != nil {
		return fmt.Errorf("delete venue %d: %w", id, err)
	}

	helper.FlashSuccess(c, fmt.Sprintf("Venue %s was successfully deleted.", venue.Name))
	return c.Redirect("/", fiber.StatusSeeOther)
}

func EditVenueForm(c *fiber.Ctx) error {
	id, err := validate.InputId(c)
	if err != nil {
		return err
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	venue, err := findByID[model.Venue](tx, id, constants.VENUE_NOT_FOUND)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "forms/edit_venue", fiber.Map{"Venue": venue}, venue)
}

func EditVenue(c *fiber.Ctx) error {
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

	venue, err := findByID[model.Venue](tx, id, constants.VENUE_NOT_FOUND)
	if err != nil {
		return err
	}
	oldName := venue.Name
	if err := helper.ApplyFields(venue, helper.VenueFields, values); err != nil {
		return editError(err)
	}
	if err := validateAs[model.CreateVenueInput](venue); err != nil {
		return err
	}
	if venue.Name != oldName {
		if venue.Slug, err = helper.GenerateUniqueSlug(tx, &model.Venue{}, venue.Name, venue.ID); err != nil {
			return err
		}
	}
	if err := tx.Omit(clause.Associations).Save(venue).Error; err != nil {
		return fmt.Errorf("update venue %d: %w", id, err)
	}

	helper.FlashSuccess(c, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	return c.Redirect(fmt.Sprintf("/venues/%d", venue.ID), fiber.StatusSeeOther)
}

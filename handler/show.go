package handler

import (
	"fmt"

	"fyyur/constants"
	"fyyur/helper"
	"fyyur/model"
	"fyyur/utils"
	"fyyur/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

func CreateShowForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "forms/new_show", nil, fiber.Map{})
}

func CreateShow(c *fiber.Ctx) error {
	show, ok := c.Locals(validate.LOCAL_CREATE_SHOW).(model.Show)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	tx, err := getTx(c)
	if err != nil {
		return err
	}

	if err := tx.Omit(clause.Associations).Create(&show).Error; err != nil {
		helper.FlashError(c, "An error occurred. Show could not be listed.")
		return fmt.Errorf("create show: %w", err)
	}

	helper.FlashSuccess(c, "Show was successfully listed!")
	return utils.SuccessResponse(c, fiber.StatusCreated, show)
}

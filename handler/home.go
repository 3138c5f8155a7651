package handler

import (
	"fmt"

	"fyyur/model"

	"github.com/gofiber/fiber/v2"
)

func Home(c *fiber.Ctx) error {
	rows, err := recentShows(c)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "pages/home", fiber.Map{"Shows": rows}, rows)
}

func GetShows(c *fiber.Ctx) error {
	rows, err := recentShows(c)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "pages/shows", fiber.Map{"Shows": rows}, rows)
}

func recentShows(c *fiber.Ctx) ([]model.ShowRow, error) {
	tx, err := getTx(c)
	if err != nil {
		return nil, err
	}
	var shows []model.Show
	if err := tx.Preload("Artist").Preload("Venue").Order("start_time DESC").Order("id").Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return showRows(shows), nil
}

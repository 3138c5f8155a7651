package handler

import (
	"errors"
	"fmt"
	"time"

	"fyyur/constants"
	"fyyur/helper"
	"fyyur/model"
	"fyyur/utils"
	"fyyur/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// now is swapped in tests to pin the past/upcoming boundary.
var now = func() time.Time { return time.Now().UTC() }

// render answers with the JSON envelope when the client asks for JSON and
// with the named template otherwise.
func render(c *fiber.Ctx, status int, view string, bind fiber.Map, data any) error {
	if utils.WantsJSON(c) {
		return utils.SuccessResponse(c, status, data)
	}
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Flashes"] = helper.TakeFlashes(c)
	return c.Status(status).Render(view, bind)
}

// ErrorHandler renders every error returned by a handler. Errors that are
// not *fiber.Error are treated as internal and their text is not shown.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := constants.ERROR_INTERNAL_ERROR

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		requestID, _ := c.Locals(constants.LOCAL_REQUEST_ID).(string)
		log.Error().Err(err).Str("request_id", requestID).Str("path", c.Path()).Msg("unhandled error")
	}

	if utils.WantsJSON(c) {
		return utils.ErrorResponse(c, code, message, nil)
	}

	view := "errors/500"
	switch {
	case code == fiber.StatusNotFound:
		view = "errors/404"
	case code < fiber.StatusInternalServerError:
		view = "errors/400"
	}
	renderErr := c.Status(code).Render(view, fiber.Map{
		"Code":    code,
		"Message": message,
		"Flashes": helper.TakeFlashes(c),
	})
	if renderErr != nil {
		log.Error().Err(renderErr).Str("view", view).Msg("render error page")
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(message)
	}
	return nil
}

func getTx(c *fiber.Ctx) (*gorm.DB, error) {
	tx, err := helper.GetDB(c)
	if err != nil {
		return nil, fmt.Errorf("handler: %w", err)
	}
	return tx, nil
}

func findByID[T any](tx *gorm.DB, id uint, notFound string) (*T, error) {
	var entity T
	if err := tx.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, notFound)
		}
		return nil, fmt.Errorf("find %T %d: %w", entity, id, err)
	}
	return &entity, nil
}

type showCount struct {
	ID    uint
	Count int64
}

// upcomingCounts maps venue or artist ids (column) to their number of shows
// starting after at.
func upcomingCounts(tx *gorm.DB, column string, at time.Time) (map[uint]int64, error) {
	var rows []showCount
	err := tx.Model(&model.Show{}).
		Select(column+" AS id, COUNT(*) AS count").
		Where("start_time > ?", at).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows by %s: %w", column, err)
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

// search runs a case-insensitive substring match on name. A blank term
// matches nothing.
func search(tx *gorm.DB, entity interface{}, column, term string) (model.SearchResult, error) {
	result := model.SearchResult{Data: []model.SearchRow{}}
	if term == "" {
		return result, nil
	}

	var rows []model.SearchRow
	err := tx.Model(entity).
		Select("id, name").
		Where("LOWER(name) LIKE ? ESCAPE '\\'", utils.LikePattern(term)).
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return result, fmt.Errorf("search %T: %w", entity, err)
	}

	counts, err := upcomingCounts(tx, column, now())
	if err != nil {
		return result, err
	}
	for i := range rows {
		rows[i].NumUpcomingShows = counts[rows[i].ID]
	}
	result.Count = len(rows)
	result.Data = append(result.Data, rows...)
	return result, nil
}

func showRows(shows []model.Show) []model.ShowRow {
	rows := make([]model.ShowRow, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, model.NewShowRow(show))
	}
	return rows
}

// editError maps ApplyFields and validation failures to 400s.
func editError(err error) error {
	var unknown *helper.UnknownFieldError
	var invalid *helper.InvalidFieldError
	switch {
	case errors.Is(err, helper.ErrNothingToUpdate):
		return fiber.NewError(fiber.StatusBadRequest, constants.EDIT_NOTHING_TO_UPDATE)
	case errors.As(err, &unknown):
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", constants.EDIT_FIELD_UNKNOWN, unknown.Field))
	case errors.As(err, &invalid):
		return fiber.NewError(fiber.StatusBadRequest, invalid.Error())
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

// validateAs checks an edited entity against the rules of its create input.
func validateAs[I any](entity any) error {
	var input I
	if err := copier.Copy(&input, entity); err != nil {
		return fmt.Errorf("copy %T into %T: %w", entity, input, err)
	}
	if err := validate.Struct(input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

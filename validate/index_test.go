package validate

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"fyyur/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_messages_use_json_names(t *testing.T) {
	err := Struct(model.CreateVenueInput{
		City:      "San Francisco",
		State:     "CA",
		Address:   strings.Repeat("x", 121),
		ImageLink: "not-a-url",
	})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "address must be at most 120 characters")
	assert.Contains(t, err.Error(), "image_link must be a valid URL")

	assert.NoError(t, Struct(model.CreateShowInput{ArtistID: 1, VenueID: 1, StartTime: "2035-04-01"}))
}

func TestBodyValues(t *testing.T) {
	app := fiber.New()
	var got map[string]any
	app.Post("/", func(c *fiber.Ctx) error {
		values, err := bodyValues(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		got = values
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{"city":"Oakland","seeking_talent":true}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, map[string]any{"city": "Oakland", "seeking_talent": true}, got)

	req = httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("genres=Jazz&genres=Folk&genres=Swing&name=Hop"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, map[string]any{"genres": []any{"Jazz", "Folk", "Swing"}, "name": "Hop"}, got)

	req = httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{"city":`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestParseId(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", GetById("id"), func(c *fiber.Ctx) error {
		id, err := InputId(c)
		if err != nil {
			return err
		}
		return c.JSON(id)
	})

	for path, status := range map[string]int{"/7": 200, "/0": 400, "/-1": 400, "/abc": 400} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode, path)
	}
}

func TestBodyValues_uses_app_json_decoder(t *testing.T) {
	calls := 0
	app := fiber.New(fiber.Config{
		JSONDecoder: func(data []byte, v interface{}) error {
			calls++
			return json.Unmarshal(data, v)
		},
	})
	var got map[string]any
	app.Post("/", func(c *fiber.Ctx) error {
		values, err := bodyValues(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		got = values
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{"name":"Hop"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, 1, calls)
	assert.Equal(t, map[string]any{"name": "Hop"}, got)
}

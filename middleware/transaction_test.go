package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"fyyur/helper"
	"fyyur/model"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Artist{}))
	return db
}

func TestTransaction(t *testing.T) {
	db := openTestDB(t)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(Transaction(db))

	insert := func(c *fiber.Ctx, name string) {
		tx, err := helper.GetDB(c)
		require.NoError(t, err)
		require.NoError(t, tx.Create(&model.Artist{Name: name, Slug: name}).Error)
	}
	app.Get("/ok", func(c *fiber.Ctx) error {
		insert(c, "ok")
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Get("/redirect", func(c *fiber.Ctx) error {
		insert(c, "redirect")
		return c.Redirect("/", fiber.StatusSeeOther)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		insert(c, "error")
		return errors.New("boom")
	})
	app.Get("/bad-request", func(c *fiber.Ctx) error {
		insert(c, "bad-request")
		return fiber.NewError(fiber.StatusBadRequest, "bad")
	})
	app.Get("/status", func(c *fiber.Ctx) error {
		insert(c, "status")
		return c.SendStatus(fiber.StatusConflict)
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		insert(c, "panic")
		panic("boom")
	})

	testCases := []struct {
		path      string
		committed bool
	}{
		{"/ok", true},
		{"/redirect", true},
		{"/error", false},
		{"/bad-request", false},
		{"/status", false},
		{"/panic", false},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil), -1)
			require.NoError(t, err)
			_ = resp.Body.Close()

			var count int64
			require.NoError(t, db.Model(&model.Artist{}).Where("name = ?", tc.path[1:]).Count(&count).Error)
			if tc.committed {
				assert.EqualValues(t, 1, count)
			} else {
				assert.EqualValues(t, 0, count)
			}
		})
	}
}

func TestTransaction_no_session_outside_middleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := helper.GetDB(c)
		assert.ErrorIs(t, err, helper.ErrNoSession)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

package router

import (
	"crypto/sha256"
	"encoding/base64"
	"net/http"

	"fyyur/handler"
	"fyyur/helper"
	"fyyur/middleware"
	"fyyur/utils"
	"fyyur/validate"
	"fyyur/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

type Deps struct {
	DB    *gorm.DB
	Store *session.Store
	// Uploader may be nil, image routes then answer 503.
	Uploader     helper.ImageUploader
	SecretKey    string
	AllowOrigins string
}

func New(deps Deps) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	engine.AddFunc("datetime", utils.FormatDateTime)

	app := fiber.New(fiber.Config{
		AppName:      "Fyyur",
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: handler.ErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	store := deps.Store
	if store == nil {
		store = session.New()
	}
	store.RegisterType([]helper.FlashMessage{})

	allowOrigins := deps.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	app.Use(middleware.RequestID())
	// cookies written by the error handler must be encrypted too
	app.Use(encryptcookie.New(encryptcookie.Config{Key: cookieKey(deps.SecretKey)}))
	app.Use(middleware.Logger())
	app.Use(recover.New())
	app.Use(favicon.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.Session(store))
	app.Use(middleware.Transaction(deps.DB))

	SetupRoutes(app, deps.Uploader)
	return app
}

func SetupRoutes(app *fiber.App, uploader helper.ImageUploader) {
	app.Get("/", handler.Home)

	venue := app.Group("/venues")
	venue.Get("/", handler.GetVenues)
	venue.Post("/search", validate.Search(), handler.SearchVenues)
	venue.Get("/create", handler.CreateVenueForm)
	venue.Post("/create", validate.CreateVenue(), handler.CreateVenue)
	venue.Get("/:venueId", validate.GetById("venueId"), handler.GetVenueById)
	venue.Delete("/:venueId", validate.GetById("venueId"), handler.DeleteVenue)
	venue.Get("/:venueId/edit", validate.GetById("venueId"), handler.EditVenueForm)
	venue.Post("/:venueId/edit", validate.EditVenue("venueId"), handler.EditVenue)
	venue.Post("/:venueId/image", validate.GetById("venueId"), handler.UploadVenueImage(uploader))

	artist := app.Group("/artists")
	artist.Get("/", handler.GetArtists)
	artist.Post("/search", validate.Search(), handler.SearchArtists)
	artist.Get("/create", handler.CreateArtistForm)
	artist.Post("/create", validate.CreateArtist(), handler.CreateArtist)
	artist.Get("/:artistId", validate.GetById("artistId"), handler.GetArtistById)
	artist.Delete("/:artistId", validate.GetById("artistId"), handler.DeleteArtist)
	artist.Get("/:artistId/edit", validate.GetById("artistId"), handler.EditArtistForm)
	artist.Post("/:artistId/edit", validate.EditArtist("artistId"), handler.EditArtist)
	artist.Post("/:artistId/image", validate.GetById("artistId"), handler.UploadArtistImage(uploader))

	show := app.Group("/shows")
	show.Get("/", handler.GetShows)
	show.Get("/create", handler.CreateShowForm)
	show.Post("/create", validate.CreateShow(), handler.CreateShow)
}

// cookieKey turns SECRET_KEY into the 32-byte base64 key encryptcookie
// expects. Without a secret a random key is used for the process lifetime.
func cookieKey(secret string) string {
	if secret == "" {
		return encryptcookie.GenerateKey()
	}
	if raw, err := base64.StdEncoding.DecodeString(secret); err == nil && len(raw) == 32 {
		return secret
	}
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/config"
	"fyyur/database"
	"fyyur/helper"
	"fyyur/router"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogger(cfg)

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer database.Close(db)

	storeConfig := session.Config{
		KeyLookup:      "cookie:fyyur_session",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.IsProduction(),
		Expiration:     24 * time.Hour,
	}
	if cfg.Redis.Addr != "" {
		storage, err := database.NewRedisStorage(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer storage.Close()
		storeConfig.Storage = storage
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	}

	deps := router.Deps{
		DB:           db,
		Store:        session.New(storeConfig),
		SecretKey:    cfg.App.SecretKey,
		AllowOrigins: cfg.App.AllowOrigins,
	}
	cld, err := helper.InitCloudinary(cfg.Cloudinary)
	if err != nil {
		log.Fatal().Err(err).Msg("init cloudinary")
	}
	if cld != nil {
		deps.Uploader = cld
	} else {
		log.Warn().Msg("cloudinary not configured, image uploads disabled")
	}

	app := router.New(deps)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Environment).Msg("starting " + cfg.App.Name)
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/solarpal/solarpal-api/internal/config"
	httpHandlers "github.com/solarpal/solarpal-api/internal/http"
	"github.com/solarpal/solarpal-api/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	svcs := service.New()
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "SolarPal API is running!", "status": "healthy"})
	})

	httpHandlers.Register(app, svcs)

	service.StartKeepAlive(config.SelfURL())

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}

package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/solarpal/solarpal-api/internal/power"
	"github.com/solarpal/solarpal-api/internal/service"
	"github.com/solarpal/solarpal-api/internal/zones"
)

func Register(app *fiber.App, svcs *service.Services) {
	app.Get("/api/solar", func(c *fiber.Ctx) error {
		lat, err := strconv.ParseFloat(c.Query("lat"), 64)
		if err != nil {
			return detail(c, fiber.StatusBadRequest, "lat must be a number")
		}
		lon, err := strconv.ParseFloat(c.Query("lon"), 64)
		if err != nil {
			return detail(c, fiber.StatusBadRequest, "lon must be a number")
		}
		if lat < 5.0 || lat > 21.0 {
			return detail(c, fiber.StatusBadRequest, "Latitude must be within Philippines range (5°-21°N)")
		}
		if lon < 117.0 || lon > 127.0 {
			return detail(c, fiber.StatusBadRequest, "Longitude must be within Philippines range (117°-127°E)")
		}

		report, err := svcs.Solar.Report(c.UserContext(), lat, lon)
		if err != nil {
			return solarError(c, err)
		}
		return c.JSON(report)
	})

	app.Get("/api/zones", func(c *fiber.Ctx) error {
		zoneMap, err := svcs.Zones.Build(c.UserContext())
		if err != nil {
			if errors.Is(err, zones.ErrAllFailed) {
				return detail(c, fiber.StatusServiceUnavailable, "Zone data is temporarily unavailable. Please try again.")
			}
			log.Error().Err(err).Msg("zone aggregation failed")
			return detail(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(fiber.Map{
			"zones":      zoneMap.Zones,
			"statistics": zoneMap.Statistics,
			"metadata": fiber.Map{
				"region":          "Philippines",
				"parameter":       power.Parameter,
				"sampling_points": len(zones.Catalog),
			},
		})
	})
}

func solarError(c *fiber.Ctx, err error) error {
	var upstream *power.UpstreamError
	switch {
	case errors.Is(err, power.ErrNoData):
		return detail(c, fiber.StatusNotFound, "No valid solar data available for this location")
	case errors.Is(err, power.ErrTimeout):
		return detail(c, fiber.StatusRequestTimeout, "NASA API request timed out. Please try again.")
	case errors.As(err, &upstream):
		return detail(c, fiber.StatusBadGateway, fmt.Sprintf("NASA API error: %d", upstream.Status))
	default:
		log.Error().Err(err).Msg("solar analysis failed")
		return detail(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

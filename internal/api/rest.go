package api

import (
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "board2go_api"

func CreateRestService(config *configuration.Configuration, registry *telemetry.Registry, registerer prometheus.Registerer) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	h := &handlers{
		config:   config,
		registry: registry,
	}

	echoRest.GET("/alive/", isAlive)
	echoRest.GET("/status/", h.getStatus)
	echoRest.GET("/fan/", h.getFan)
	echoRest.GET("/led/", h.getLed)
	echoRest.GET("/curve/", h.getCurve)
	echoRest.GET("/config/", h.getConfig)

	registerTelemetryEndpoints(echoRest, h)

	return echoRest
}

package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerTelemetryEndpoints(rest *echo.Echo, h *handlers) {
	group := rest.Group("/telemetry")

	group.GET("/", h.getReadings)
	group.GET("/:"+urlParamId+"/", h.getReading)
}

func (h *handlers) getReadings(c echo.Context) error {
	data := h.registry.Items()
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (h *handlers) getReading(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := h.registry.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}

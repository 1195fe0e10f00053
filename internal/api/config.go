package api

import (
	"net/http"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

// getConfig returns a deep copy of the active configuration, its board and
// sensor sections as well as the fan presets are shared with the daemon.
func (h *handlers) getConfig(c echo.Context) error {
	data := reprint.This(*h.config).(configuration.Configuration)
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

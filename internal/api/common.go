package api

import (
	"net/http"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/labstack/echo/v4"
)

const (
	urlParamId      = "id"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// handlers only read state documents and the telemetry registry, never the board.
type handlers struct {
	config   *configuration.Configuration
	registry *telemetry.Registry
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

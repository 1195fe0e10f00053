package api

import (
	"net/http"
	"time"

	"github.com/board2go/board2go/internal/colors"
	"github.com/board2go/board2go/internal/curves"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/labstack/echo/v4"
)

type StatusResponse struct {
	Status *state.HardwareStatus `json:"status"`
	Stale  bool                  `json:"stale"`
}

type FanResponse struct {
	State   *state.FanState `json:"state"`
	Pwm     int             `json:"pwm"`
	Percent int             `json:"percent"`
}

type LedResponse struct {
	State *state.LedState `json:"state"`
	Color colors.Color    `json:"color"`
}

type CurveResponse struct {
	Points curves.Curve `json:"points"`
}

func (h *handlers) getStatus(c echo.Context) error {
	status := state.ReadHardwareStatus(h.config.HardwareStatusPath())
	if status == nil {
		return returnNotFound(c, h.config.Files.HardwareStatus)
	}
	return c.JSONPretty(http.StatusOK, &StatusResponse{
		Status: status,
		Stale:  status.IsStale(time.Now(), h.config.HardwareStatusMaxAge),
	}, indentationChar)
}

// requested state as read from the state documents and the values last applied by the daemon
func (h *handlers) getFan(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, &FanResponse{
		State:   state.ReadFanState(h.config.FanStatePath()),
		Pwm:     int(h.registry.Value(telemetry.FanPwm, 0)),
		Percent: int(h.registry.Value(telemetry.FanPercent, 0)),
	}, indentationChar)
}

func (h *handlers) getLed(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, &LedResponse{
		State: state.ReadLedState(h.config.LedStatePath()),
		Color: colors.Color{
			R: int(h.registry.Value(telemetry.LedRed, 0)),
			G: int(h.registry.Value(telemetry.LedGreen, 0)),
			B: int(h.registry.Value(telemetry.LedBlue, 0)),
		},
	}, indentationChar)
}

func (h *handlers) getCurve(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, &CurveResponse{
		Points: curves.Load(h.config.FanCurvePath()),
	}, indentationChar)
}

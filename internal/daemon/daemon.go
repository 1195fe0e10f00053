package daemon

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/board2go/board2go/internal/board"
	"github.com/board2go/board2go/internal/colors"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/controller"
	"github.com/board2go/board2go/internal/curves"
	"github.com/board2go/board2go/internal/persistence"
	"github.com/board2go/board2go/internal/sensors"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/system"
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/board2go/board2go/internal/ui"
	sddaemon "github.com/coreos/go-systemd/v22/daemon"
)

// minimum change before the last temperature is persisted again
const persistTemperatureDelta = 1.0

// Dependencies are the collaborators of a Daemon. Board, Sensor and Registry
// are required, everything else is optional.
type Dependencies struct {
	Board    board.Board
	Sensor   sensors.Sensor
	Registry *telemetry.Registry

	Persistence persistence.Persistence
	Sampler     *system.Sampler
	Watcher     *state.Watcher
	Notifier    Notifier

	PrimaryIp   func() string
	InterfaceIp func(name string) string
}

// Daemon runs the control loop. All board access happens on the goroutine
// calling Run or Tick.
type Daemon struct {
	config *configuration.Configuration
	deps   Dependencies

	fan *controller.FanController
	led *controller.LedController

	temperature     float64
	haveTemperature bool
	persistedTemp   float64
	fallbackWarned  bool

	fanState *state.FanState
	ledState *state.LedState
	curve    curves.Curve

	primaryIp string
	tunnelIp  string

	tempTimer    *interval
	ipTimer      *interval
	stateTimer   *interval
	statusTimer  *interval
	metricsTimer *interval

	watchdog     bool
	shutdownOnce sync.Once
}

func NewDaemon(config *configuration.Configuration, deps Dependencies) *Daemon {
	if deps.PrimaryIp == nil {
		deps.PrimaryIp = sensors.HostPrimaryIp
	}
	if deps.InterfaceIp == nil {
		deps.InterfaceIp = sensors.InterfaceIp
	}

	return &Daemon{
		config:        config,
		deps:          deps,
		fan:           controller.NewFanController(deps.Board, config.Fan.Presets),
		led:           controller.NewLedController(deps.Board, config.Led, colors.Green),
		temperature:   config.FallbackTemperature,
		persistedTemp: math.NaN(),
		curve:         curves.DefaultCurve(),
		primaryIp:     sensors.NoIp,
		tunnelIp:      sensors.NoIp,
		tempTimer:     newInterval(config.TempPollingRate),
		ipTimer:       newInterval(config.NetworkPollingRate),
		stateTimer:    newInterval(config.StatePollingRate),
		statusTimer:   newInterval(config.HardwareStatusRate),
		metricsTimer:  newInterval(config.Metrics.PollingRate),
	}
}

// Start puts the board under host control. Write failures are logged only,
// the controllers retry on every tick.
func (d *Daemon) Start(now time.Time) {
	d.restore(now)

	if err := d.deps.Board.SetFanMode(board.FanModeManual); err != nil {
		ui.Error("Unable to switch board %s to manual fan mode: %v", d.deps.Board.GetId(), err)
	}
	if err := d.deps.Board.SetLedMode(board.LedModeRgb); err != nil {
		ui.Error("Unable to set initial led mode on board %s: %v", d.deps.Board.GetId(), err)
	}
}

func (d *Daemon) restore(now time.Time) {
	p := d.deps.Persistence
	if p == nil {
		return
	}

	shutdown, err := p.LoadShutdown()
	if err == nil && !shutdown.Clean {
		ui.Warning("Previous run (%s) did not shut down cleanly", shutdown.Time.Format(time.RFC3339))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		ui.Warning("Unable to load shutdown marker: %v", err)
	}

	record, err := p.LoadLastTemperature()
	if err == nil {
		ui.Info("Using persisted temperature %.1f°C until the sensor responds", record.Value)
		d.temperature = record.Value
		d.persistedTemp = record.Value
	}

	if err := p.SaveShutdown(false, now); err != nil {
		ui.Warning("Unable to store shutdown marker: %v", err)
	}
}

// Tick is one iteration of the control loop.
func (d *Daemon) Tick(now time.Time) {
	if d.tempTimer.due(now) {
		d.updateTemperature(now)
	}

	if d.ipTimer.due(now) {
		d.updateIps(now)
	}

	if d.deps.Watcher != nil && d.deps.Watcher.Changed() {
		d.stateTimer.trigger()
	}
	if d.stateTimer.due(now) {
		d.readState()
	}

	if err := d.fan.Update(d.fanState, d.temperature, d.curve); err != nil {
		ui.Error("Fan update failed: %v", err)
	}
	color, err := d.led.Update(d.ledState, d.temperature)
	if err != nil {
		ui.Error("LED update failed: %v", err)
	}
	d.publishActuators(color, now)

	if d.statusTimer.due(now) {
		d.publishHardwareStatus(now)
	}

	if d.deps.Sampler != nil && d.metricsTimer.due(now) {
		d.publishMetrics(d.deps.Sampler.Sample(now), now)
	}
}

func (d *Daemon) updateTemperature(now time.Time) {
	value, err := d.deps.Sensor.GetValue()
	if err != nil {
		if !d.haveTemperature && !d.fallbackWarned {
			d.fallbackWarned = true
			ui.WarningAndNotify("Temperature unavailable",
				"Sensor %s did not respond, controlling fans with %.1f°C: %v", d.deps.Sensor.GetId(), d.temperature, err)
			return
		}
		ui.Warning("Error reading temperature from %s, using %.1f°C: %v", d.deps.Sensor.GetId(), d.temperature, err)
		return
	}
	d.temperature = value
	d.haveTemperature = true
	d.deps.Registry.Set(telemetry.CpuTemperature, value, "°C", now)

	if d.deps.Persistence != nil && !(math.Abs(value-d.persistedTemp) < persistTemperatureDelta) {
		if err := d.deps.Persistence.SaveLastTemperature(value, now); err != nil {
			ui.Warning("Unable to persist temperature: %v", err)
		} else {
			d.persistedTemp = value
		}
	}
}

func (d *Daemon) updateIps(now time.Time) {
	primary := d.deps.PrimaryIp()
	if primary != d.primaryIp {
		ui.Info("Primary IP: %s", primary)
		d.primaryIp = primary
	}
	d.deps.Registry.SetText(telemetry.PrimaryIp, primary, now)

	tunnelInterface := d.config.Network.TunnelInterface
	if tunnelInterface == "" {
		return
	}
	tunnel := d.deps.InterfaceIp(tunnelInterface)
	if tunnel != d.tunnelIp {
		ui.Info("%s IP: %s", tunnelInterface, tunnel)
		d.tunnelIp = tunnel
	}
	d.deps.Registry.SetText(telemetry.TunnelIp, tunnel, now)
}

func (d *Daemon) readState() {
	d.fanState = state.ReadFanState(d.config.FanStatePath())
	d.ledState = state.ReadLedState(d.config.LedStatePath())
	d.curve = curves.Load(d.config.FanCurvePath())
}

func (d *Daemon) publishActuators(color colors.Color, now time.Time) {
	r := d.deps.Registry
	if pwm, ok := d.fan.LastSetPwm(); ok {
		r.Set(telemetry.FanPwm, float64(pwm), "", now)
		r.Set(telemetry.FanPercent, float64(d.fan.Percent()), "%", now)
	}
	fanStats := d.fan.Stats()
	r.Set(telemetry.FanWrites, float64(fanStats.Writes), "", now)
	r.Set(telemetry.FanFailures, float64(fanStats.Failures), "", now)

	r.Set(telemetry.LedRed, float64(color.R), "", now)
	r.Set(telemetry.LedGreen, float64(color.G), "", now)
	r.Set(telemetry.LedBlue, float64(color.B), "", now)
	ledStats := d.led.Stats()
	r.Set(telemetry.LedWrites, float64(ledStats.Writes), "", now)
	r.Set(telemetry.LedSuppressed, float64(ledStats.Suppressed), "", now)
	r.Set(telemetry.LedFailures, float64(ledStats.Failures), "", now)
}

// HardwareStatus queries the board. If that fails, the chassis temperature is
// reported as 0 and the fans with the last applied duty.
func (d *Daemon) HardwareStatus(now time.Time) state.HardwareStatus {
	b := d.deps.Board
	chassisTemp, err := b.GetTemp()
	var duty [board.FanChannelCount]int
	for channel := 0; err == nil && channel < board.FanChannelCount; channel++ {
		duty[channel], err = b.GetFanDuty(channel)
	}
	if err != nil {
		ui.Warning("Unable to query board %s: %v", b.GetId(), err)
		percent := d.fan.Percent()
		return state.NewHardwareStatus(0, percent, percent, now)
	}
	return state.NewHardwareStatus(chassisTemp, controller.DutyToPercent(duty[0]), controller.DutyToPercent(duty[1]), now)
}

func (d *Daemon) publishHardwareStatus(now time.Time) {
	status := d.HardwareStatus(now)
	if err := state.Write(d.config.HardwareStatusPath(), status); err != nil {
		ui.Error("Unable to write hardware status: %v", err)
	}
}

func (d *Daemon) publishMetrics(sample system.Sample, now time.Time) {
	r := d.deps.Registry
	r.Set(telemetry.CpuPercent, sample.CpuPercent, "%", now)
	r.Set(telemetry.RamPercent, sample.RamPercent, "%", now)
	r.Set(telemetry.DiskPercent, sample.DiskPercent, "%", now)
	r.SetText(telemetry.NetInterface, sample.Interface, now)
	r.Set(telemetry.NetUpload, sample.Upload, "MB/s", now)
	r.Set(telemetry.NetDownload, sample.Download, "MB/s", now)
	r.Set(telemetry.NetScale, sample.NetScale, "MB/s", now)
	r.Set(telemetry.DiskRead, sample.DiskRead, "MB/s", now)
	r.Set(telemetry.DiskWrite, sample.DiskWrite, "MB/s", now)
	r.Set(telemetry.DiskScale, sample.DiskScale, "MB/s", now)
}

// safeTick turns a panic inside a tick into an error
func (d *Daemon) safeTick(now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ui.Error("Control loop panicked: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("control loop panic: %v", r)
		}
	}()
	d.Tick(now)
	return nil
}

// Run ticks until ctx is done or a tick panics. It does not apply the safe
// state, callers have to call Shutdown.
func (d *Daemon) Run(ctx context.Context) error {
	d.Start(time.Now())
	d.notify(sddaemon.SdNotifyReady)
	if d.deps.Notifier != nil {
		d.watchdog = d.deps.Notifier.WatchdogInterval() > 0
	}

	ticker := time.NewTicker(d.config.TickRate)
	defer ticker.Stop()

	if err := d.safeTick(time.Now()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := d.safeTick(now); err != nil {
				return err
			}
			if d.watchdog {
				d.notify(sddaemon.SdNotifyWatchdog)
			}
		}
	}
}

// Shutdown turns the LEDs and fans off. Only the first call has an effect.
func (d *Daemon) Shutdown() (err error) {
	d.shutdownOnce.Do(func() {
		err = d.shutdown(time.Now())
	})
	return err
}

func (d *Daemon) shutdown(now time.Time) error {
	ui.Info("Applying safe state to board %s", d.deps.Board.GetId())
	b := d.deps.Board

	var errs []error
	if err := b.SetLedMode(board.LedModeOff); err != nil {
		errs = append(errs, fmt.Errorf("setting led mode off: %w", err))
	}
	if err := b.SetAllLedColor(colors.Black.R, colors.Black.G, colors.Black.B); err != nil {
		errs = append(errs, fmt.Errorf("turning leds off: %w", err))
	}
	if err := b.SetFanDuty(board.MinDutyValue, board.MinDutyValue); err != nil {
		errs = append(errs, fmt.Errorf("turning fans off: %w", err))
	}
	d.fan.Reset()

	d.notify(sddaemon.SdNotifyStopping)

	if p := d.deps.Persistence; p != nil {
		if d.haveTemperature {
			if err := p.SaveLastTemperature(d.temperature, now); err != nil {
				ui.Warning("Unable to persist temperature: %v", err)
			}
		}
		if err := p.SaveShutdown(len(errs) == 0, now); err != nil {
			ui.Warning("Unable to store shutdown marker: %v", err)
		}
	}

	return errors.Join(errs...)
}

func (d *Daemon) notify(s string) {
	if d.deps.Notifier == nil {
		return
	}
	if err := d.deps.Notifier.Notify(s); err != nil {
		ui.Warning("Unable to notify systemd (%s): %v", s, err)
	}
}

// Temperature returns the temperature the controllers currently work with.
func (d *Daemon) Temperature() float64 {
	return d.temperature
}

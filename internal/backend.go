package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/board2go/board2go/internal/api"
	"github.com/board2go/board2go/internal/board"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/daemon"
	"github.com/board2go/board2go/internal/persistence"
	"github.com/board2go/board2go/internal/sensors"
	"github.com/board2go/board2go/internal/state"
	"github.com/board2go/board2go/internal/statistics"
	"github.com/board2go/board2go/internal/system"
	"github.com/board2go/board2go/internal/telemetry"
	"github.com/board2go/board2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serverShutdownTimeout = 5 * time.Second

func RunDaemon() {
	config := &configuration.CurrentConfig

	if config.Board.Expansion != nil && getProcessOwner() != "root" {
		ui.Fatal("Accessing the I2C bus requires root permissions, please run board2go as root")
	}

	b, err := board.NewBoard(config.Board)
	if err != nil {
		ui.Fatal("Unable to initialize board: %v", err)
	}

	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		ui.Fatal("Unable to process sensor configuration: %v", err)
	}

	registry := telemetry.NewRegistry()
	statistics.RegisterAll(prometheus.DefaultRegisterer, registry)

	deps := daemon.Dependencies{
		Board:    b,
		Sensor:   sensor,
		Registry: registry,
		Notifier: daemon.SystemdNotifier{},
	}

	pers := persistence.NewPersistence(config.DbPath)
	if err := pers.Init(); err != nil {
		ui.Warning("Persistence disabled, unable to prepare %s: %v", config.DbPath, err)
	} else {
		deps.Persistence = pers
	}

	if config.Metrics.Enabled {
		deps.Sampler = system.NewSampler(system.HostSource{}, config.Metrics)
	}

	if config.WatchStateDir {
		watcher, err := state.NewWatcher(config.StateDir, config.FanStatePath(), config.LedStatePath(), config.FanCurvePath())
		if err != nil {
			ui.Warning("Unable to watch state directory %s, falling back to polling: %v", config.StateDir, err)
		} else {
			deps.Watcher = watcher
		}
	}

	d := daemon.NewDaemon(config, deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addServer(&g, "statistics", &http.Server{
				Addr:    fmt.Sprintf(":%d", config.Statistics.Port),
				Handler: mux,
			})
		}
	}
	{
		if config.Api.Enabled {
			// === REST API
			rest := api.CreateRestService(config, registry, prometheus.DefaultRegisterer)
			addServer(&g, "api", &http.Server{
				Addr:    fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port),
				Handler: rest,
			})
		}
	}
	{
		if config.Profiling.Enabled {
			mux := http.NewServeMux()
			mux.HandleFunc("/debug/pprof/", pprof.Index)
			mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
			mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
			mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
			mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
			addServer(&g, "profiling", &http.Server{
				Addr:    fmt.Sprintf("%s:%d", config.Profiling.Host, config.Profiling.Port),
				Handler: mux,
			})
		}
	}
	{
		if deps.Watcher != nil {
			g.Add(func() error {
				return deps.Watcher.Run(ctx)
			}, func(err error) {
				cancel()
			})
		}
	}
	{
		// === control loop
		g.Add(func() error {
			ui.Info("Starting control loop for board %s", b.GetId())
			err := d.Run(ctx)
			ui.Info("Control loop stopped.")
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	runErr := g.Run()
	shutdownErr := d.Shutdown()
	if shutdownErr != nil {
		ui.Error("Unable to apply safe state: %v", shutdownErr)
	}
	if err := b.Close(); err != nil {
		ui.Warning("Error closing board %s: %v", b.GetId(), err)
	}

	if runErr != nil || shutdownErr != nil {
		if runErr != nil {
			_, _ = fmt.Fprintln(os.Stderr, runErr)
		}
		os.Exit(1)
	}
	ui.Info("Done.")
}

func addServer(g *run.Group, name string, server *http.Server) {
	g.Add(func() error {
		ui.Info("Starting %s server on %s", name, server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			ui.Error("Cannot start %s server (%s)", name, err.Error())
			return err
		}
		return nil
	}, func(err error) {
		ui.Info("Stopping %s server...", name)
		timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer timeoutCancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			ui.Warning("Error stopping %s server: %v", name, err)
		} else {
			ui.Info("%s server stopped.", name)
		}
	})
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
	}
	return strings.TrimSpace(string(stdout))
}

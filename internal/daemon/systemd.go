package daemon

import (
	"time"

	"github.com/board2go/board2go/internal/ui"
	sddaemon "github.com/coreos/go-systemd/v22/daemon"
)

// Notifier reports the service state to the init system.
type Notifier interface {
	Notify(state string) error
	WatchdogInterval() time.Duration
}

type SystemdNotifier struct{}

func (n SystemdNotifier) Notify(state string) error {
	sent, err := sddaemon.SdNotify(false, state)
	if err != nil {
		return err
	}
	if !sent {
		ui.Debug("Not running under systemd, skipping notification %s", state)
	}
	return nil
}

// WatchdogInterval returns 0 if the unit has no watchdog configured.
func (n SystemdNotifier) WatchdogInterval() time.Duration {
	interval, err := sddaemon.SdWatchdogEnabled(false)
	if err != nil {
		ui.Warning("Unable to read systemd watchdog configuration: %v", err)
		return 0
	}
	return interval
}

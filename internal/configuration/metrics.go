package configuration

import (
	"time"

	"github.com/board2go/board2go/internal/scale"
)

type MetricsConfig struct {
	Enabled     bool          `json:"enabled"`
	PollingRate time.Duration `json:"pollingRate"`
	WindowSize  int           `json:"windowSize"`
	// Interface pins the network interface, empty selects the busiest one
	Interface string       `json:"interface"`
	Network   scale.Config `json:"network"`
	Disk      scale.Config `json:"disk"`
}

package scale

import (
	"math"

	"github.com/asecurityteam/rolling"
	"github.com/board2go/board2go/internal/util"
)

// Config tunes the dynamic chart ceiling of one metric series.
type Config struct {
	MinScale       float64 `json:"minScale"`
	MaxScale       float64 `json:"maxScale"`
	IdleThreshold  float64 `json:"idleThreshold"`
	IdleResetTicks int     `json:"idleResetTicks"`
	// DecayFactor is applied per update while neither rising nor idle, in (0, 1]
	DecayFactor float64 `json:"decayFactor"`
	Headroom    float64 `json:"headroom"`
}

func DefaultConfig() Config {
	return Config{
		MinScale:       0.1,
		MaxScale:       10000,
		IdleThreshold:  0.5,
		IdleResetTicks: 8,
		DecayFactor:    0.95,
		Headroom:       1.2,
	}
}

type State struct {
	CurrentMax  float64 `json:"currentMax"`
	IdleCounter int     `json:"idleCounter"`
}

func NewState(cfg Config) State {
	return State{CurrentMax: cfg.MinScale}
}

// Update computes the next scale state for the given recent samples.
func Update(cfg Config, s State, window []float64) State {
	peak := util.Max(window)

	switch {
	case peak > s.CurrentMax:
		return State{
			CurrentMax:  math.Min(peak*cfg.Headroom, cfg.MaxScale),
			IdleCounter: 0,
		}
	case peak < cfg.IdleThreshold:
		s.IdleCounter++
		if s.IdleCounter > cfg.IdleResetTicks {
			s.CurrentMax = cfg.MinScale
		}
		return s
	default:
		return State{
			CurrentMax:  math.Max(s.CurrentMax*cfg.DecayFactor, cfg.MinScale),
			IdleCounter: 0,
		}
	}
}

// Series holds the recent samples of one metric together with its scale.
type Series struct {
	Name   string
	config Config
	window *rolling.PointPolicy
	state  State
}

func NewSeries(name string, cfg Config, windowSize int) *Series {
	return &Series{
		Name:   name,
		config: cfg,
		window: util.CreateRollingWindow(windowSize),
		state:  NewState(cfg),
	}
}

// Append adds a sample and advances the scale.
func (s *Series) Append(value float64) State {
	s.window.Append(value)
	s.state = Update(s.config, s.state, s.Values())
	return s.state
}

func (s *Series) Values() []float64 {
	return util.GetWindowValues(s.window)
}

func (s *Series) State() State {
	return s.state
}

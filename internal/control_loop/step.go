package control_loop

import (
	"github.com/board2go/board2go/internal/util"
)

// StepControlLoop approaches the target by at most maxStep per cycle.
type StepControlLoop struct {
	maxStep float64
}

// NewStepControlLoop creates a StepControlLoop. A maxStep <= 0 jumps to the target directly.
func NewStepControlLoop(maxStep float64) *StepControlLoop {
	return &StepControlLoop{
		maxStep: maxStep,
	}
}

func (l *StepControlLoop) Loop(target float64, measured float64) float64 {
	if l.maxStep <= 0 {
		return target
	}
	err := target - measured
	return measured + util.Coerce(err, -l.maxStep, l.maxStep)
}

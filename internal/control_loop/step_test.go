package control_loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepControlLoop_Direct(t *testing.T) {
	// GIVEN
	loop := NewStepControlLoop(0)

	// WHEN
	result := loop.Loop(200, 10)

	// THEN
	assert.Equal(t, 200.0, result)
}

func TestStepControlLoop_MaxChange(t *testing.T) {
	// GIVEN
	loop := NewStepControlLoop(10)

	// WHEN
	up := loop.Loop(255, 0)
	down := loop.Loop(0, 255)

	// THEN
	assert.Equal(t, 10.0, up)
	assert.Equal(t, 245.0, down)
}

func TestStepControlLoop_ReachesTarget(t *testing.T) {
	// GIVEN
	loop := NewStepControlLoop(10)
	value := 0.0

	// WHEN
	for i := 0; i < 30; i++ {
		value = loop.Loop(42, value)
	}

	// THEN
	assert.Equal(t, 42.0, value)
}

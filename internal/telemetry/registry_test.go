package telemetry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_SetAndGet(t *testing.T) {
	// GIVEN
	r := NewRegistry()
	now := time.Now()

	// WHEN
	r.Set(CpuTemperature, 48.3, "°C", now)
	r.SetText(PrimaryIp, "192.168.1.20", now)

	// THEN
	reading, ok := r.Get(CpuTemperature)
	assert.True(t, ok)
	assert.Equal(t, Reading{Id: CpuTemperature, Value: 48.3, Unit: "°C", Time: now}, reading)

	reading, ok = r.Get(PrimaryIp)
	assert.True(t, ok)
	assert.Equal(t, "192.168.1.20", reading.Text)

	_, ok = r.Get(FanPwm)
	assert.False(t, ok)
}

func TestRegistry_Value(t *testing.T) {
	// GIVEN
	r := NewRegistry()
	r.Set(FanPwm, 130, "", time.Now())

	// THEN
	assert.Equal(t, 130.0, r.Value(FanPwm, -1))
	assert.Equal(t, -1.0, r.Value(FanPercent, -1))
}

func TestRegistry_IdsSorted(t *testing.T) {
	// GIVEN
	r := NewRegistry()
	now := time.Now()
	r.Set(RamPercent, 1, "%", now)
	r.Set(CpuPercent, 1, "%", now)
	r.Set(FanPwm, 1, "", now)

	// WHEN
	ids := r.Ids()

	// THEN
	assert.Equal(t, []string{CpuPercent, FanPwm, RamPercent}, ids)
	assert.Equal(t, 3, r.Count())
	assert.Len(t, r.Items(), 3)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	// GIVEN
	r := NewRegistry()
	var wg sync.WaitGroup

	// WHEN
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Set(CpuTemperature, float64(i*j), "", time.Now())
				_ = r.Items()
			}
		}(i)
	}
	wg.Wait()

	// THEN
	assert.Equal(t, 1, r.Count())
}

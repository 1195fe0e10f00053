package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
)

func TestNewSensor(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{
		File: &configuration.FileSensorConfig{Path: "/sys/class/thermal/thermal_zone0/temp"},
	}

	// WHEN
	sensor, err := NewSensor(config)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "/sys/class/thermal/thermal_zone0/temp", sensor.GetId())
}

func TestNewSensor_Missing(t *testing.T) {
	// WHEN
	_, err := NewSensor(configuration.SensorConfig{})

	// THEN
	assert.Error(t, err)
}

func TestParseTemperature(t *testing.T) {
	inputs := map[string]float64{
		"temp=48.3'C": 48.3,
		"52":          52,
		" 61.0\n":     61,
		"temp=-3.5'C": -3.5,
	}
	for input, expected := range inputs {
		// WHEN
		result, err := ParseTemperature(input)

		// THEN
		assert.NoError(t, err, input)
		assert.Equal(t, expected, result, input)
	}
}

func TestParseTemperature_Invalid(t *testing.T) {
	// WHEN
	_, err := ParseTemperature("error: VCHI initialization failed")

	// THEN
	assert.EqualError(t, err, "no temperature in output: 'error: VCHI initialization failed'")
}

func TestCmdSensor_GetId(t *testing.T) {
	// GIVEN
	sensor := CmdSensor{Config: configuration.CmdSensorConfig{Exec: "/usr/bin/vcgencmd", Args: []string{"measure_temp"}}}

	// THEN
	assert.Equal(t, "/usr/bin/vcgencmd measure_temp", sensor.GetId())
}

func TestCmdSensor_MissingExecutable(t *testing.T) {
	// GIVEN
	sensor := CmdSensor{Config: configuration.CmdSensorConfig{Exec: filepath.Join(t.TempDir(), "vcgencmd")}}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestFileSensor_MilliDegrees(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp")
	assert.NoError(t, os.WriteFile(path, []byte("48312\n"), 0644))
	sensor := FileSensor{Config: configuration.FileSensorConfig{Path: path}}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.InDelta(t, 48.312, value, 1e-9)
}

func TestFileSensor_Degrees(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp")
	assert.NoError(t, os.WriteFile(path, []byte("47.5"), 0644))
	sensor := FileSensor{Config: configuration.FileSensorConfig{Path: path}}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 47.5, value)
}

func TestFileSensor_Missing(t *testing.T) {
	// GIVEN
	sensor := FileSensor{Config: configuration.FileSensorConfig{Path: filepath.Join(t.TempDir(), "temp")}}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestPrimaryIp(t *testing.T) {
	// GIVEN
	interfaces := net.InterfaceStatList{
		{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: net.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
		{Name: "eth0", Flags: []string{"broadcast"}, Addrs: net.InterfaceAddrList{{Addr: "10.0.0.3/24"}}},
		{Name: "wlan0", Flags: []string{"up", "broadcast"}, Addrs: net.InterfaceAddrList{
			{Addr: "fe80::1/64"},
			{Addr: "192.168.1.20/24"},
		}},
	}

	// WHEN
	result := primaryIp(interfaces)

	// THEN
	assert.Equal(t, "192.168.1.20", result)
}

func TestPrimaryIp_None(t *testing.T) {
	// GIVEN
	interfaces := net.InterfaceStatList{
		{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: net.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
	}

	// WHEN
	result := primaryIp(interfaces)

	// THEN
	assert.Equal(t, NoIp, result)
}

func TestInterfaceIp_Unknown(t *testing.T) {
	assert.Equal(t, NoIp, InterfaceIp("board2go-does-not-exist0"))
}

package board

import (
	"fmt"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/util"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// register map of the expansion board firmware
const (
	regLedAll      byte = 0x02
	regLedMode     byte = 0x03
	regFanMode     byte = 0x04
	regFanDuty     byte = 0x06
	regFanDutyRead byte = 0xF9
	regTempRead    byte = 0xFB
)

// ExpansionBoard talks to the case expansion board over I2C.
type ExpansionBoard struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

func NewExpansionBoard(config configuration.ExpansionBoardConfig) (*ExpansionBoard, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing host drivers: %w", err)
	}
	bus, err := i2creg.Open(config.Bus)
	if err != nil {
		return nil, fmt.Errorf("opening i2c bus %s: %w", config.Bus, err)
	}
	return newExpansionBoard(bus, config.Address), nil
}

func newExpansionBoard(bus i2c.BusCloser, address configuration.I2cAddress) *ExpansionBoard {
	return &ExpansionBoard{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: uint16(address)},
	}
}

func (b *ExpansionBoard) GetId() string {
	return fmt.Sprintf("expansion@%s/0x%02x", b.bus.String(), b.dev.Addr)
}

func (b *ExpansionBoard) write(register byte, data ...int) error {
	w := []byte{register}
	for _, value := range data {
		w = append(w, byte(util.Coerce(value, MinDutyValue, MaxDutyValue)))
	}
	if err := b.dev.Tx(w, nil); err != nil {
		return fmt.Errorf("writing register 0x%02x: %w", register, err)
	}
	return nil
}

func (b *ExpansionBoard) read(register byte, length int) ([]byte, error) {
	r := make([]byte, length)
	if err := b.dev.Tx([]byte{register}, r); err != nil {
		return nil, fmt.Errorf("reading register 0x%02x: %w", register, err)
	}
	return r, nil
}

func (b *ExpansionBoard) SetFanMode(mode FanMode) error {
	return b.write(regFanMode, int(mode))
}

func (b *ExpansionBoard) SetFanDuty(duty0 int, duty1 int) error {
	return b.write(regFanDuty, duty0, duty1)
}

func (b *ExpansionBoard) GetFanDuty(channel int) (int, error) {
	if err := checkChannel(channel); err != nil {
		return 0, err
	}
	r, err := b.read(regFanDutyRead, FanChannelCount)
	if err != nil {
		return 0, err
	}
	return int(r[channel]), nil
}

func (b *ExpansionBoard) SetLedMode(mode LedMode) error {
	return b.write(regLedMode, int(mode))
}

func (b *ExpansionBoard) SetAllLedColor(r int, g int, bl int) error {
	return b.write(regLedAll, r, g, bl)
}

func (b *ExpansionBoard) GetTemp() (float64, error) {
	r, err := b.read(regTempRead, 1)
	if err != nil {
		return 0, err
	}
	return float64(int8(r[0])), nil
}

func (b *ExpansionBoard) Close() error {
	return b.bus.Close()
}

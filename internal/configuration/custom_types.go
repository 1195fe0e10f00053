package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// I2cAddress is a 7 bit bus address, configurable as number or hex string ("0x21").
type I2cAddress uint16

func (a I2cAddress) String() string {
	return fmt.Sprintf("0x%02x", uint16(a))
}

// ParseI2cAddress accepts decimal and 0x prefixed hex notation.
func ParseI2cAddress(text string) (I2cAddress, error) {
	text = strings.TrimSpace(text)
	value, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid i2c address '%s': %w", text, err)
	}
	return I2cAddress(value), nil
}

func i2cAddressHookFunc() mapstructure.DecodeHookFuncType {
	addressType := reflect.TypeOf(I2cAddress(0))
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != addressType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return ParseI2cAddress(v)
		case int:
			return I2cAddress(v), nil
		case float64:
			return I2cAddress(v), nil
		}
		return data, nil
	}
}

package configuration

const (
	DefaultI2cBus                = "1"
	DefaultI2cAddress I2cAddress = 0x21
)

type BoardConfig struct {
	Expansion *ExpansionBoardConfig `json:"expansion,omitempty"`
	File      *FileBoardConfig      `json:"file,omitempty"`
}

type ExpansionBoardConfig struct {
	// Bus is the periph.io bus name, e.g. "1" for /dev/i2c-1
	Bus     string     `json:"bus"`
	Address I2cAddress `json:"address"`
}

type FileBoardConfig struct {
	// Path is a directory with one file per board register
	Path string `json:"path"`
}

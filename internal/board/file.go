package board

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/util"
)

const (
	fileFanMode  = "fan_mode"
	fileLedMode  = "led_mode"
	fileLedRed   = "led_r"
	fileLedGreen = "led_g"
	fileLedBlue  = "led_b"
	fileTemp     = "temp"
)

// FileBoard mirrors every board register as a file with a single integer
// inside a directory. Useful for development machines without the board.
type FileBoard struct {
	Path string
}

func NewFileBoard(config configuration.FileBoardConfig) (*FileBoard, error) {
	path, err := util.ExpandHome(config.Path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	return &FileBoard{Path: path}, nil
}

func (b *FileBoard) GetId() string {
	return "file@" + b.Path
}

func (b *FileBoard) file(name string) string {
	return filepath.Join(b.Path, name)
}

func fanDutyFile(channel int) string {
	return fmt.Sprintf("fan%d_duty", channel)
}

func (b *FileBoard) SetFanMode(mode FanMode) error {
	return util.WriteIntToFileAtomic(int(mode), b.file(fileFanMode))
}

func (b *FileBoard) SetFanDuty(duty0 int, duty1 int) error {
	for channel, duty := range []int{duty0, duty1} {
		value := util.Coerce(duty, MinDutyValue, MaxDutyValue)
		if err := util.WriteIntToFileAtomic(value, b.file(fanDutyFile(channel))); err != nil {
			return err
		}
	}
	return nil
}

func (b *FileBoard) GetFanDuty(channel int) (int, error) {
	if err := checkChannel(channel); err != nil {
		return 0, err
	}
	return util.ReadIntFromFile(b.file(fanDutyFile(channel)))
}

func (b *FileBoard) SetLedMode(mode LedMode) error {
	return util.WriteIntToFileAtomic(int(mode), b.file(fileLedMode))
}

func (b *FileBoard) SetAllLedColor(r int, g int, bl int) error {
	channels := map[string]int{
		fileLedRed:   r,
		fileLedGreen: g,
		fileLedBlue:  bl,
	}
	for _, name := range util.SortedKeys(channels) {
		value := util.Coerce(channels[name], MinDutyValue, MaxDutyValue)
		if err := util.WriteIntToFileAtomic(value, b.file(name)); err != nil {
			return err
		}
	}
	return nil
}

func (b *FileBoard) GetTemp() (float64, error) {
	return util.ReadFloatFromFile(b.file(fileTemp))
}

func (b *FileBoard) Close() error {
	return nil
}

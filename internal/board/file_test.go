package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/util"
	"github.com/stretchr/testify/assert"
)

func createFileBoard(t *testing.T) *FileBoard {
	b, err := NewFileBoard(configuration.FileBoardConfig{Path: filepath.Join(t.TempDir(), "board")})
	assert.NoError(t, err)
	return b
}

func TestNewBoard_File(t *testing.T) {
	// GIVEN
	config := configuration.BoardConfig{
		File: &configuration.FileBoardConfig{Path: t.TempDir()},
	}

	// WHEN
	b, err := NewBoard(config)

	// THEN
	assert.NoError(t, err)
	assert.IsType(t, &FileBoard{}, b)
}

func TestNewBoard_Missing(t *testing.T) {
	// WHEN
	_, err := NewBoard(configuration.BoardConfig{})

	// THEN
	assert.Error(t, err)
}

func TestFileBoard_FanDuty(t *testing.T) {
	// GIVEN
	b := createFileBoard(t)

	// WHEN
	err := b.SetFanDuty(130, -5)

	// THEN
	assert.NoError(t, err)
	duty0, err := b.GetFanDuty(0)
	assert.NoError(t, err)
	assert.Equal(t, 130, duty0)
	duty1, err := b.GetFanDuty(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, duty1)
}

func TestFileBoard_Led(t *testing.T) {
	// GIVEN
	b := createFileBoard(t)

	// WHEN
	errMode := b.SetLedMode(LedModeBreathing)
	errColor := b.SetAllLedColor(1, 2, 3)

	// THEN
	assert.NoError(t, errMode)
	assert.NoError(t, errColor)
	mode, _ := util.ReadIntFromFile(filepath.Join(b.Path, fileLedMode))
	assert.Equal(t, int(LedModeBreathing), mode)
	g, _ := util.ReadIntFromFile(filepath.Join(b.Path, fileLedGreen))
	assert.Equal(t, 2, g)
}

func TestFileBoard_GetTemp(t *testing.T) {
	// GIVEN
	b := createFileBoard(t)
	assert.NoError(t, os.WriteFile(filepath.Join(b.Path, fileTemp), []byte("38.5"), 0644))

	// WHEN
	temp, err := b.GetTemp()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 38.5, temp)
}

func TestFileBoard_GetTemp_Missing(t *testing.T) {
	// GIVEN
	b := createFileBoard(t)

	// WHEN
	_, err := b.GetTemp()

	// THEN
	assert.Error(t, err)
}

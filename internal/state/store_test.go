package state

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteThenRead(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	doc := map[string]any{
		"mode":  "manual",
		"value": 12.5,
		"list":  []any{1.0, "two"},
	}

	// WHEN
	err := Write(path, doc)

	// THEN
	assert.NoError(t, err)
	result, ok := Read(path)
	assert.True(t, ok)
	assert.Equal(t, doc, result)
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	// WHEN
	assert.NoError(t, Write(path, map[string]any{"a": 1}))
	assert.NoError(t, Write(path, map[string]any{"a": 2}))

	// THEN
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	result, _ := Read(path)
	assert.Equal(t, 2.0, result["a"])
}

func TestWrite_ReadableByOtherUsers(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "hardware_state.json")

	// WHEN
	err := Write(path, NewHardwareStatus(41, 50, 50, time.Now()))

	// THEN
	assert.NoError(t, err)
	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, FileMode, info.Mode().Perm())
}

func TestWrite_ResetsModeOfExistingFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "fan_state.json")
	assert.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	// WHEN
	err := Write(path, map[string]any{"mode": "auto"})

	// THEN
	assert.NoError(t, err)
	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, FileMode, info.Mode().Perm())
}

func TestRead_NeverWritten(t *testing.T) {
	// WHEN
	result, ok := Read(filepath.Join(t.TempDir(), "missing.json"))

	// THEN
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestRead_Invalid(t *testing.T) {
	contents := []string{
		"",
		"not json",
		"{\"mode\": ",
		"[1, 2, 3]",
		"\"auto\"",
		"null",
		"42",
	}

	for _, content := range contents {
		// GIVEN
		path := filepath.Join(t.TempDir(), "doc.json")
		assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

		// WHEN
		result, ok := Read(path)

		// THEN
		assert.False(t, ok, content)
		assert.Nil(t, result, content)
	}
}

func TestCoerceInt(t *testing.T) {
	accepted := map[any]int{
		12.0:   12,
		12.9:   12,
		-3.7:   -3,
		"45":   45,
		" 45 ": 45,
		7:      7,
		1e20:   math.MaxInt32,
		-1e20:  math.MinInt32,
	}
	for input, expected := range accepted {
		result, ok := CoerceInt(input)
		assert.True(t, ok, "%v", input)
		assert.Equal(t, expected, result, "%v", input)
	}

	rejected := []any{nil, true, "45.5", "abc", map[string]any{}, []any{1.0}, math.NaN(), math.Inf(1)}
	for _, input := range rejected {
		_, ok := CoerceInt(input)
		assert.False(t, ok, "%v", input)
	}
}

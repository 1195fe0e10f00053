package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatcher_FlagsTrackedFile(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	fanPath := filepath.Join(dir, "fan_state.json")
	watcher, err := NewWatcher(dir, fanPath)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.Run(ctx)
	}()

	// WHEN
	assert.NoError(t, Write(fanPath, FanState{Mode: FanModeSilent}))

	// THEN
	assert.Eventually(t, watcher.Changed, 2*time.Second, 10*time.Millisecond)
	assert.False(t, watcher.Changed())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	watcher, err := NewWatcher(dir, filepath.Join(dir, "fan_state.json"))
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.Run(ctx)
	}()

	// WHEN
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(200 * time.Millisecond)

	// THEN
	assert.False(t, watcher.Changed())
}

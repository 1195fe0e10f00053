package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// FileMode of every written document, readable by a UI running as another user
const FileMode os.FileMode = 0644

// Write serializes doc as JSON and replaces the file at path in a single
// rename, so a concurrent reader sees either the old or the new document.
func Write(path string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := writeTempFile(dir, filepath.Base(path), data)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := atomic.ReplaceFile(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// writeTempFile stores data next to its destination so the final rename
// never crosses a filesystem boundary.
func writeTempFile(dir string, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".tmp")
	if err != nil {
		return "", err
	}
	tmp := f.Name()
	err = f.Chmod(FileMode)
	if err == nil {
		_, err = f.Write(data)
	}
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}

// Read returns the JSON object stored at path. The second return value is
// false if the file is absent, unreadable, not valid JSON or not an object.
func Read(path string) (map[string]any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	object, ok := doc.(map[string]any)
	if !ok {
		return nil, false
	}
	return object, true
}

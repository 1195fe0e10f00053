package util

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/natefinch/atomic"
)

// CheckFilePermissionsForExecution checks whether the given filePath owner, group and permissions
// are safe to use this file for execution by board2go.
func CheckFilePermissionsForExecution(filePath string) (bool, error) {
	file, err := filepath.EvalSymlinks(filePath)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(file)
	if os.IsNotExist(err) {
		return false, errors.New("file not found")
	}

	stat := info.Sys().(*syscall.Stat_t)
	if stat.Uid != 0 {
		return false, errors.New("owner is not root")
	}

	if stat.Gid != 0 {
		groupWrite := info.Mode() & os.FileMode(0o020)
		if groupWrite != 0 {
			return false, errors.New("group is not root but has write permission")
		}
	}

	otherWrite := info.Mode() & os.FileMode(0o002)
	if otherWrite != 0 {
		return false, errors.New("others have write permission")
	}

	return true, nil
}

// ExpandHome replaces a leading "~" with the home directory of the current user
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	currentUser, err := user.Current()
	if err != nil {
		return path, err
	}
	return filepath.Join(currentUser.HomeDir, path[1:]), nil
}

func ReadIntFromFile(path string) (value int, err error) {
	text, err := readTrimmed(path)
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(text)
}

func ReadFloatFromFile(path string) (value float64, err error) {
	text, err := readTrimmed(path)
	if err != nil {
		return -1, err
	}
	return strconv.ParseFloat(text, 64)
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return "", fmt.Errorf("file is empty: %s", path)
	}
	return text, nil
}

func resolvePath(path string) string {
	evaluatedPath, err := filepath.EvalSymlinks(path)
	if len(evaluatedPath) > 0 && err == nil {
		return evaluatedPath
	}
	return path
}

// WriteIntToFileAtomic replaces the content of the file at path with the given integer
func WriteIntToFileAtomic(value int, path string) error {
	path = resolvePath(path)
	valueReader := strings.NewReader(strconv.Itoa(value))
	return atomic.WriteFile(path, valueReader)
}

package util

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var ErrCommandTimeout = errors.New("command timed out")

// SafeCmdExecution runs the given executable with a deadline and returns its
// trimmed stdout. The executable must pass CheckFilePermissionsForExecution.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}
	return CmdExecution(executable, args, timeout)
}

// CmdExecution runs the given executable with a deadline and returns its trimmed stdout.
func CmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%s: %w", executable, ErrCommandTimeout)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", executable, err)
	}

	return strings.TrimSpace(string(out)), nil
}

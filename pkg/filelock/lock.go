// Package filelock serializes writers of one output file across lparsum
// processes with a PID-stamped .lock file beside the target.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const (
	retryBusy    = 200 * time.Millisecond
	retryUnknown = 100 * time.Millisecond
)

// Path returns the lock file guarding target.
func Path(target string) string {
	return target + ".lock"
}

// Lock creates the lock file for target. While a live process holds it,
// Lock waits until it is released or ctx is done. A lock left behind by a
// dead process, or one that cannot be parsed, is removed and taken over.
// The returned function releases the lock.
func Lock(ctx context.Context, target string) (func() error, error) {
	lockFile := Path(target)

	if err := os.MkdirAll(filepath.Dir(lockFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent dir for lock: %w", err)
	}

	for {
		f, err := os.OpenFile(lockFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			content := fmt.Sprintf("%s %d", time.Now().Format(time.RFC3339), os.Getpid())
			if _, err := f.WriteString(content); err != nil {
				f.Close()
				os.Remove(lockFile)
				return nil, fmt.Errorf("failed to write to lock file: %w", err)
			}
			f.Close()
			return func() error {
				return os.Remove(lockFile)
			}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}

		pid, err := owner(lockFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Released between our create and read.
			continue
		case err != nil:
			if err := wait(ctx, retryUnknown); err != nil {
				return nil, err
			}
			continue
		case pid <= 0 || !isPidAlive(pid):
			os.Remove(lockFile)
			continue
		}

		if err := wait(ctx, retryBusy); err != nil {
			return nil, fmt.Errorf("waiting for %s held by pid %d: %w", lockFile, pid, err)
		}
	}
}

// owner returns the PID recorded in lockFile, or 0 if the content is corrupt.
func owner(lockFile string) (int, error) {
	content, err := os.ReadFile(lockFile)
	if err != nil {
		return 0, err
	}
	parts := strings.Fields(string(content))
	if len(parts) < 2 {
		return 0, nil
	}
	pid, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, nil
	}
	return pid, nil
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isPidAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// Signal 0 checks existence
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	if errors.Is(err, syscall.ESRCH) || errors.Is(err, os.ErrProcessDone) {
		return false
	}
	// EPERM: exists but not ours
	return true
}

package plan

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// ErrStoreLocked is returned when another process keeps the plans file locked.
var ErrStoreLocked = errors.New("plans file is locked by another process")

const (
	lockSuffix   = ".lock"
	lockAttempts = 20
	lockBackoff  = 25 * time.Millisecond
)

// fileLock is a PID lock file guarding writes to the plans file, so the
// calendar and a concurrent CLI import do not overwrite each other.
type fileLock struct {
	path string
}

func newFileLock(target string) fileLock {
	return fileLock{path: target + lockSuffix}
}

// acquire takes the lock, waiting briefly for a live holder. Locks left by
// dead processes are removed.
func (l fileLock) acquire() error {
	for attempt := 0; attempt < lockAttempts; attempt++ {
		err := l.tryCreate()
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create lock file: %w", err)
		}

		held, err := l.held()
		if err != nil {
			return err
		}
		if held {
			time.Sleep(lockBackoff)
		}
	}
	return ErrStoreLocked
}

func (l fileLock) tryCreate() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, writeErr := fmt.Fprintf(f, "%d", os.Getpid())
	f.Close()
	if writeErr != nil {
		os.Remove(l.path)
		return fmt.Errorf("failed to write lock file: %w", writeErr)
	}
	return nil
}

// held reports whether the existing lock belongs to a live process. Stale or
// unreadable locks are removed.
func (l fileLock) held() (bool, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read lock file: %w", err)
	}

	pid, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
	if parseErr == nil && pid != os.Getpid() && processExists(pid) {
		return true, nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	return false, nil
}

// release removes the lock file. A missing file is not an error.
func (l fileLock) release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// processExists checks if a process with the given PID is running.
// Uses kill with signal 0, which checks for process existence without sending a signal.
func processExists(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

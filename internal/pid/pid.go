package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"codeberg.org/mutker/powerhal/internal/errors"
)

const (
	pidFile = "powerhal.pid"
)

// Path returns the PID file location inside dir.
func Path(dir string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, pidFile)
}

// Write writes the current process ID to the PID file in dir. It fails with
// ErrAlreadyRunning if the file names another live process.
func Write(dir string) error {
	errFactory := errors.New()
	pid := os.Getpid()
	path := Path(dir)

	if bytes, err := os.ReadFile(path); err == nil {
		other, err := strconv.Atoi(strings.TrimSpace(string(bytes)))
		if err == nil && other != pid && isRunning(other) {
			return errFactory.WithData(errors.ErrAlreadyRunning, other)
		}
	} else if !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove removes the PID file.
func Remove(dir string) error {
	errFactory := errors.New()

	if err := os.Remove(Path(dir)); err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func isRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}

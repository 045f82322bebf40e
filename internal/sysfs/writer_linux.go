//go:build linux

package sysfs

import (
	"io"

	"golang.org/x/sys/unix"
)

// writeControl does a single unbuffered write(2). Control nodes are never
// created or truncated.
func writeControl(path, value string) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return openError(path, err)
	}
	defer unix.Close(fd)

	n, err := unix.Write(fd, []byte(value))
	if err != nil {
		return writeError(path, err)
	}
	if n < len(value) {
		return writeError(path, io.ErrShortWrite)
	}

	return nil
}

//go:build !linux

package sysfs

import (
	"io"
	"os"
)

func writeControl(path, value string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return openError(path, err)
	}
	defer f.Close()

	n, err := f.Write([]byte(value))
	if err != nil {
		return writeError(path, err)
	}
	if n < len(value) {
		return writeError(path, io.ErrShortWrite)
	}

	return nil
}

// Package sysfs writes short ASCII tokens to kernel control nodes.
package sysfs

import (
	"path/filepath"

	"codeberg.org/mutker/powerhal/internal/errors"
)

const defaultRoot = "/"

// Writer writes a value to a control path.
type Writer interface {
	Write(path, value string) error
}

type writer struct {
	root string
}

// NewWriter returns a Writer that resolves control paths under root.
// An empty root means the real filesystem root.
func NewWriter(root string) Writer {
	if root == "" {
		root = defaultRoot
	}
	return &writer{root: root}
}

func (w *writer) Write(path, value string) error {
	return writeControl(w.resolve(path), value)
}

func (w *writer) resolve(path string) string {
	if w.root == defaultRoot {
		return path
	}
	return filepath.Join(w.root, path)
}

type failure struct {
	Path  string
	Error string
}

func openError(path string, err error) errors.Error {
	return errors.New().Wrap(errors.ErrOpenFailed, err).WithData(failure{Path: path, Error: err.Error()})
}

func writeError(path string, err error) errors.Error {
	return errors.New().Wrap(errors.ErrWriteFailed, err).WithData(failure{Path: path, Error: err.Error()})
}

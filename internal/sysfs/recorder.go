package sysfs

import (
	"sync"

	"codeberg.org/mutker/powerhal/internal/errors"
)

// Write is a single recorded control write.
type Write struct {
	Path  string
	Value string
}

// Recorder is an in-memory Writer. Successful writes are recorded in order;
// paths marked with Fail return an error and are not recorded.
type Recorder struct {
	mu       sync.Mutex
	writes   []Write
	failures map[string]error
}

func NewRecorder() *Recorder {
	return &Recorder{failures: make(map[string]error)}
}

func (r *Recorder) Write(path, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.failures[path]; ok {
		return writeError(path, err)
	}
	r.writes = append(r.writes, Write{Path: path, Value: value})

	return nil
}

// Fail makes subsequent writes to path fail with err.
func (r *Recorder) Fail(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err == nil {
		err = errors.New().New(errors.ErrWriteFailed)
	}
	r.failures[path] = err
}

// Heal clears a failure set with Fail.
func (r *Recorder) Heal(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.failures, path)
}

func (r *Recorder) Writes() []Write {
	r.mu.Lock()
	defer r.mu.Unlock()

	writes := make([]Write, len(r.writes))
	copy(writes, r.writes)

	return writes
}

// Values returns the values written to path, oldest first.
func (r *Recorder) Values(path string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var values []string
	for _, w := range r.writes {
		if w.Path == path {
			values = append(values, w.Value)
		}
	}

	return values
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = nil
}

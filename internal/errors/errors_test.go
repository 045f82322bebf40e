package errors_test

import (
	"fmt"
	"io/fs"
	"testing"

	"codeberg.org/mutker/powerhal/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.New(errors.ErrOpenFailed)
	assert.Equal(t, "Failed to open control path", err.Error())

	err = errFactory.WithMessage(errors.ErrOpenFailed, "custom")
	assert.Equal(t, "custom", err.Error())

	err = errFactory.New(errors.ErrorCode("unknown_code"))
	assert.Equal(t, "unknown_code", err.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.Wrap(errors.ErrWriteFailed, fs.ErrPermission)
	assert.Equal(t, errors.ErrWriteFailed, err.Code())
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "Failed to write control path")
}

func TestWithDataKeepsCode(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.Wrap(errors.ErrOpenFailed, fs.ErrNotExist).WithData("/dev/b.L_operator")
	assert.Equal(t, errors.ErrOpenFailed, err.Code())
	assert.Equal(t, "/dev/b.L_operator", err.GetData())
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestHasCode(t *testing.T) {
	errFactory := errors.New()

	inner := errFactory.Wrap(errors.ErrWriteFailed, fs.ErrClosed)
	outer := errFactory.Wrap(errors.ErrServeFailed, fmt.Errorf("serving: %w", inner))

	assert.True(t, errors.HasCode(outer, errors.ErrServeFailed))
	assert.True(t, errors.HasCode(outer, errors.ErrWriteFailed))
	assert.False(t, errors.HasCode(outer, errors.ErrOpenFailed))
	assert.False(t, errors.HasCode(fs.ErrClosed, errors.ErrOpenFailed))
	assert.False(t, errors.HasCode(nil, errors.ErrOpenFailed))
}

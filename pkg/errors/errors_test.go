package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/ragdata/gobytes/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "color",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field color: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("level", "loud", "not a log level")
		assert.Equal(t, "validation failed for field level: not a log level", err.Error())
	})
}

func TestColorError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := pkgerrors.NewColorError("chartreuse")
		assert.Equal(t, `unknown color "chartreuse"`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrUnknownColor))
		assert.True(t, pkgerrors.IsUnknownColor(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewColorError("mauve")
		wrapped := errors.Join(errors.New("render failed"), base)
		assert.True(t, pkgerrors.IsUnknownColor(wrapped))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("logging", "bad level", nil)
		assert.Equal(t, "configuration error in logging: bad level", err.Error())
	})

	t.Run("without component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("", "bad level", nil)
		assert.Equal(t, "configuration error: bad level", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := errors.New("inner")
		err := pkgerrors.NewConfigError("msg", "outer", inner)
		require.ErrorIs(t, err, inner)
	})
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := pkgerrors.NewIOError("open", "/var/log/gobytes.log", inner)
		assert.Equal(t, "IO error during open of /var/log/gobytes.log: permission denied", err.Error())
		assert.ErrorIs(t, err, inner)
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewIOError("write", "", errors.New("short write"))
		assert.Equal(t, "IO error during write: short write", err.Error())
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
		assert.Nil(t, pkgerrors.WrapIO("read", "path", nil))
		assert.Nil(t, pkgerrors.WrapConfig("logging", nil))
	})

	t.Run("wrap validation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("prefix", errors.New("too long"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("wrap io", func(t *testing.T) {
		inner := errors.New("disk full")
		err := pkgerrors.WrapIO("write", "out.log", inner)
		assert.ErrorIs(t, err, inner)
	})

	t.Run("wrap config", func(t *testing.T) {
		inner := errors.New("no such file")
		err := pkgerrors.WrapConfig("viper", inner)
		assert.ErrorIs(t, err, inner)
		assert.Contains(t, err.Error(), "configuration error in viper")
	})
}

func TestSentinels(t *testing.T) {
	assert.True(t, pkgerrors.IsEmptyMessage(pkgerrors.ErrEmptyMessage))
	assert.True(t, pkgerrors.IsUnknownLevel(pkgerrors.ErrUnknownLevel))
	assert.True(t, pkgerrors.IsNotFound(pkgerrors.ErrNotFound))
	assert.False(t, pkgerrors.IsEmptyMessage(pkgerrors.ErrNotFound))
}

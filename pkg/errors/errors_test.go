// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_property",
			code:    errors.ErrUnknownProperty,
			message: "property 'tfmx' is not registered",
			wantStr: "[UNKNOWN_PROPERTY] property 'tfmx' is not registered",
		},
		{
			name:    "unsupported_framework_kind",
			code:    errors.ErrUnsupportedFrameworkKind,
			message: "fallback frameworks are not supported",
			wantStr: "[UNSUPPORTED_FRAMEWORK_KIND] fallback frameworks are not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidPattern, "segment %d of %q", 2, "lib/{tfm")
	assert.Equal(t, `[INVALID_PATTERN] segment 2 of "lib/{tfm"`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
	})

	t.Run("wrapped error is reachable", func(t *testing.T) {
		base := stderrors.New("disk on fire")
		err := errors.Wrap(base, errors.ErrListingRead, "failed to read listing")

		require.NotNil(t, err)
		assert.True(t, stderrors.Is(err, base))
		assert.Equal(t, "[LISTING_READ] failed to read listing: disk on fire", err.Error())
	})

	t.Run("wrapf formats message", func(t *testing.T) {
		base := stderrors.New("bad toml")
		err := errors.Wrapf(base, errors.ErrConfigParse, "failed to parse %s", "config.toml")
		assert.Equal(t, "[CONFIG_PARSE] failed to parse config.toml: bad toml", err.Error())
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrUnknownProperty, "nope")
	wrapped := fmt.Errorf("compiling pattern: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrUnknownProperty))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrNotFound))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnknownProperty))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknownProperty))
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "category 'foo' not found")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNotFound, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrInternal, "other message")))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrRuntimeGraph, errors.GetErrorCode(errors.New(errors.ErrRuntimeGraph, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrUnknownProperty, "unknown").
		WithDetail("property", "tfmx").
		WithDetail("pattern", "lib/{tfmx}")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "tfmx", details["property"])
	assert.Equal(t, "lib/{tfmx}", details["pattern"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

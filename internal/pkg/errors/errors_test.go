package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(NotFound, "configuration file not found")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, NotFound, appErr.Type())
	assert.Equal(t, "configuration file not found", appErr.Message())
	assert.Equal(t, "[NotFound] configuration file not found", err.Error())
	assert.Nil(t, appErr.Unwrap())
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "port %d out of range", 70000)
	assert.Equal(t, "[InvalidInput] port 70000 out of range", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cause    error
		wantNil  bool
		expected string
	}{
		{name: "wraps standard error", cause: errStd, expected: "[System] read failed: standard error"},
		{name: "wraps app error", cause: New(NotFound, "missing"), expected: "[System] read failed: [NotFound] missing"},
		{name: "nil cause", cause: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Wrap(tt.cause, System, "read failed")
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.expected, err.Error())
			assert.True(t, errors.Is(err, tt.cause))
		})
	}
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	err := Wrapf(errStd, ParsingFailed, "cannot parse %q", "2024-13-01")
	assert.Equal(t, `[ParsingFailed] cannot parse "2024-13-01": standard error`, err.Error())
	assert.NoError(t, Wrapf(nil, ParsingFailed, "ignored %d", 1))
}

func TestIs(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(New(ParsingFailed, "bad mention"), InvalidInput, "catalog"), System, "startup")

	assert.True(t, Is(err, System))
	assert.True(t, Is(err, InvalidInput))
	assert.True(t, Is(err, ParsingFailed))
	assert.False(t, Is(err, NotFound))
	assert.False(t, Is(nil, Unknown))
	assert.False(t, Is(errStd, Unknown))
}

func TestAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", New(Internal, "inner"))

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, Internal, appErr.Type())
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))
	assert.Equal(t, errStd, RootCause(Wrap(Wrap(errStd, System, "a"), Internal, "b")))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, UnderlyingType(nil))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Equal(t, NotFound, UnderlyingType(Wrap(New(NotFound, "x"), Internal, "y")))
	assert.Equal(t, ParsingFailed, UnderlyingType(Wrap(errStd, ParsingFailed, "z")))
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "InvalidInput", InvalidInput.String())
	assert.Equal(t, "ParsingFailed", ParsingFailed.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "inner"), System, "outer")

	assert.Equal(t, "[System] outer: [NotFound] inner", fmt.Sprintf("%s", err))
	assert.Equal(t, "[System] outer: [NotFound] inner", fmt.Sprintf("%v", err))
	assert.Equal(t, `"[System] outer: [NotFound] inner"`, fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[System] outer")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[NotFound] inner")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "errors_test.go")
}

func TestStackTrace(t *testing.T) {
	t.Parallel()

	err := New(Internal, "with stack")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.LessOrEqual(t, len(appErr.Stack()), maxStackFrames)
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestStackTrace")
}

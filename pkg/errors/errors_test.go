package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			err:      New(CodeConfigError, "missing size"),
			expected: "[CONFIG_ERROR] missing size",
		},
		{
			name:     "with underlying error",
			err:      Wrap(CodeIOError, "write failed", errors.New("disk full")),
			expected: "[IO_ERROR] write failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := Wrap(CodePrecisionError, "precision failed", underlying)

	unwrapped := err.Unwrap()
	assert.Equal(t, underlying, unwrapped)
}

func TestAppError_Is(t *testing.T) {
	err1 := New(CodeConfigError, "error 1")
	err2 := New(CodeConfigError, "error 2")
	err3 := New(CodeIOError, "error 3")

	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, err3))
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "config error", err: ErrConfigError, expected: true},
		{
			name:     "wrapped config error",
			err:      Wrap(CodeConfigError, "bad size", errors.New("must be positive")),
			expected: true,
		},
		{name: "other error", err: ErrIOError, expected: false},
		{name: "nil error", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsConfigError(tt.err))
		})
	}
}

func TestIsPrecisionError(t *testing.T) {
	assert.True(t, IsPrecisionError(ErrPrecisionError))
	assert.False(t, IsPrecisionError(ErrConfigError))
}

func TestIsTopologyError(t *testing.T) {
	assert.True(t, IsTopologyError(ErrTopologyError))
	assert.False(t, IsTopologyError(ErrConfigError))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "app error", err: New(CodeConfigError, "bad config"), expected: CodeConfigError},
		{
			name:     "wrapped app error",
			err:      Wrap(CodeIOError, "write", errors.New("inner")),
			expected: CodeIOError,
		},
		{name: "standard error", err: errors.New("standard error"), expected: CodeUnknown},
		{name: "nil error", err: nil, expected: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCode(tt.err))
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "app error", err: New(CodeConfigError, "bad config"), expected: "bad config"},
		{name: "standard error", err: errors.New("standard error"), expected: "standard error"},
		{name: "nil error", err: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorMessage(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(ErrConfigError))
	assert.Equal(t, 3, ExitCode(ErrIOError))
	assert.Equal(t, 4, ExitCode(ErrAllocError))
	assert.Equal(t, 5, ExitCode(ErrPrecisionError))
	assert.Equal(t, 6, ExitCode(ErrTopologyError))
	assert.Equal(t, 7, ExitCode(ErrThreadError))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
}

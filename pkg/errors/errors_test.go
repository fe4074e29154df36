// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/xrelkd/axdot/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_command_error",
			code:    errors.ErrNoCommandProvided,
			message: "no command provided",
			wantStr: "[NO_COMMAND_PROVIDED] no command provided",
		},
		{
			name:    "env_user_error",
			code:    errors.ErrEnvUserNotFound,
			message: "failed to get user name from environment variable",
			wantStr: "[ENV_USER_NOT_FOUND] failed to get user name from environment variable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrCreateFile, "cannot create %s with mode %o", "file.txt", 0644)
	if err.Message != "cannot create file.txt with mode 644" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrCreateDirectory, "failed to create directory")

		if err.Code != errors.ErrCreateDirectory {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrCreateDirectory)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CREATE_DIRECTORY] failed to create directory: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_path", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrRemoveFile, "failed to remove %q", "/tmp/x")
		if err.Message != `failed to remove "/tmp/x"` {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCopyFile, "copy failed").
		WithDetail("source", "/src").
		WithDetail("destination", "/dest")

	if err.Details["source"] != "/src" {
		t.Errorf("WithDetail() source = %v, want %v", err.Details["source"], "/src")
	}

	if err.Details["destination"] != "/dest" {
		t.Errorf("WithDetail() destination = %v, want %v", err.Details["destination"], "/dest")
	}

	if got := errors.GetErrorDetails(err); got["source"] != "/src" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrCanonicalizePath, "error 1")
	err2 := errors.New(errors.ErrCanonicalizePath, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with AxdotError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrSpawnCommand, "spawn failed"),
			code:     errors.ErrSpawnCommand,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrSpawnCommand, "spawn failed"),
			code:     errors.ErrWaitCommand,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrCreateSymbolLink, "denied"),
			code:     errors.ErrCreateSymbolLink,
			expected: true,
		},
		{
			name:     "non_axdot_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrCopyFile,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrCopyFile,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "axdot_error",
			err:      errors.New(errors.ErrParseConfig, "bad yaml"),
			expected: errors.ErrParseConfig,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrReadConfigFile, "cannot read file")
	outer := errors.Wrap(fileErr, errors.ErrInternal, "apply failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(outer, errors.ErrInternal) {
			t.Error("Top level should have ErrInternal code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var axErr *errors.AxdotError
		if stderrors.As(outer.Unwrap(), &axErr) {
			if !errors.IsErrorCode(axErr, errors.ErrReadConfigFile) {
				t.Error("Middle error should have ErrReadConfigFile code")
			}
		} else {
			t.Error("Middle error should be an AxdotError")
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(outer, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

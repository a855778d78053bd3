package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	e := New(ErrCodeConfig, "invalid node_meta filter")
	want := "CONFIG_ERROR: invalid node_meta filter"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}

	wrapped := Wrap(ErrCodeConnectivity, "failed to connect to consul", fmt.Errorf("dial tcp: refused"))
	if got := wrapped.Error(); got != "CONNECTIVITY_ERROR: failed to connect to consul: dial tcp: refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	wrapped := Wrap(ErrCodeData, "bad node", cause)

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeConfig, "x"), ErrCodeConfig},
		{"wrapped coded", fmt.Errorf("outer: %w", New(ErrCodeData, "x")), ErrCodeData},
		{"plain", fmt.Errorf("plain"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

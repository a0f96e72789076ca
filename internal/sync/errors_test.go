package sync

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		cred bool
		src  bool
		enum bool
	}{
		{"credentials", &CredentialsError{Err: cause}, true, false, false},
		{"source", fmt.Errorf("run: %w", &SourceFetchError{Err: cause}), false, true, false},
		{"enumeration", &EnumerationError{Page: 3, Err: cause}, false, false, true},
		{"plain", cause, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCredentialsError(tt.err); got != tt.cred {
				t.Errorf("IsCredentialsError = %v, want %v", got, tt.cred)
			}
			if got := IsSourceFetchError(tt.err); got != tt.src {
				t.Errorf("IsSourceFetchError = %v, want %v", got, tt.src)
			}
			if got := IsEnumerationError(tt.err); got != tt.enum {
				t.Errorf("IsEnumerationError = %v, want %v", got, tt.enum)
			}
			if !errors.Is(tt.err, cause) {
				t.Error("expected cause to be unwrapped")
			}
		})
	}
}

func TestEnumerationErrorMessage(t *testing.T) {
	err := &EnumerationError{Page: 2, Err: errors.New("timeout")}
	if got := err.Error(); got != "enumerating records (page 2): timeout" {
		t.Errorf("unexpected message: %q", got)
	}
}

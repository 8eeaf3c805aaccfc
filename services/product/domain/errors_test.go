package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrProductNotFound, "product not found"},
		{ErrProductAlreadyExists, "product already exists"},
		{ErrInvalidProduct, "invalid product"},
		{ErrPermissionDenied, "permission denied"},
	}
	for _, tc := range cases {
		if tc.err == nil {
			t.Fatalf("sentinel for %q must not be nil", tc.want)
		}
		if tc.err.Error() != tc.want {
			t.Errorf("unexpected message: got %q, want %q", tc.err.Error(), tc.want)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrProductNotFound)
	if !errors.Is(wrapped, ErrProductNotFound) {
		t.Fatal("errors.Is must match wrapped ErrProductNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidProduct, errors.New("negative price"))
	if !errors.Is(wrapped2, ErrInvalidProduct) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidProduct")
	}
}

package dbl

import (
	"errors"
	"testing"
)

func TestHTTPErrorUnwrap(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{401, ErrUnauthorized},
		{403, ErrUnauthorized},
		{404, ErrNotFound},
		{429, ErrRateLimited},
	}
	for _, tc := range cases {
		err := &HTTPError{StatusCode: tc.status}
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d should unwrap to %v", tc.status, tc.want)
		}
	}
}

func TestHTTPErrorGenericStatus(t *testing.T) {
	err := &HTTPError{StatusCode: 502, Body: "bad gateway"}
	for _, sentinel := range []error{ErrUnauthorized, ErrNotFound, ErrRateLimited} {
		if errors.Is(err, sentinel) {
			t.Fatalf("502 should not match %v", sentinel)
		}
	}
	if got, want := err.Error(), "dbl: unexpected status 502: bad gateway"; got != want {
		t.Fatalf("unexpected message: %q", got)
	}
}

package dbl

import (
	"errors"
	"fmt"
)

// Sentinel errors for the status classes the listing service returns. Responses
// carrying one of these statuses come back as an *HTTPError that unwraps to the
// matching sentinel, so both errors.Is and type assertions work.
var (
	// ErrUnauthorized covers a bad or missing token as well as owner-only
	// endpoints queried by a non-owner (the service answers 401/403 for both).
	ErrUnauthorized = errors.New("dbl: unauthorized")

	// ErrNotFound means the bot or user id is unknown to the service.
	ErrNotFound = errors.New("dbl: not found")

	// ErrRateLimited means the service is throttling the token. The client
	// performs no retries; whether and when to retry is up to the caller.
	ErrRateLimited = errors.New("dbl: rate limited")
)

// HTTPError is returned for every non-2xx response. It preserves the original
// status code and raw body for diagnostics.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("dbl: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps well-known status codes to their sentinel error.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	}
	return nil
}

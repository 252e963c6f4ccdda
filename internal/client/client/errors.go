package client

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrRequestFailed = errors.New("request failed")
)

// APIError is the uniform failure of every API call: the HTTP status (0 for
// transport failures) and the human-readable messages to display.
type APIError struct {
	Status   int
	Messages []string
	Err      error
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Unwrap exposes the sentinel matching the status, so callers can use
// errors.Is(err, client.ErrUnauthorized) and friends.
func (e *APIError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	switch e.Status {
	case 0:
		return ErrUnavailable
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrRequestFailed
	}
}

// Messages returns the display messages carried by err. Errors that are not
// an *APIError yield their own text as a single message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return apiErr.Messages
	}
	return []string{err.Error()}
}

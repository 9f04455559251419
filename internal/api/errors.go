package api

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// snippetLimit bounds how much of a raw body is kept for diagnostics
const snippetLimit = 200

const (
	fallbackSubscription = "Subscription failed"
	fallbackReservation  = "Reservation failed"
)

// SubscriptionError is returned when a newsletter signup does not succeed
type SubscriptionError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubscriptionError) Error() string { return e.Message }

func (e *SubscriptionError) Unwrap() error { return e.Err }

// ReservationError is returned when a booking does not succeed. A fully
// booked slot is only distinguishable through Message.
type ReservationError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ReservationError) Error() string { return e.Message }

func (e *ReservationError) Unwrap() error { return e.Err }

// StatusError is a non-2xx answer from an admin endpoint
type StatusError struct {
	Path       string
	StatusCode int
	Snippet    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Snippet)
}

// MalformedResponseError is a body that could not be decoded into the
// expected shape, typically an HTML error page served with 200.
type MalformedResponseError struct {
	Path       string
	StatusCode int
	Snippet    string
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return "Expected JSON but got: " + e.Snippet
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// RequestError is a transport failure: the backend could not be reached or
// the body could not be read.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Message flattens any client error into the text shown to visitors
func Message(err error) string {
	if err == nil {
		return ""
	}

	var subErr *SubscriptionError
	if errors.As(err, &subErr) {
		return subErr.Message
	}
	var resErr *ReservationError
	if errors.As(err, &resErr) {
		return resErr.Message
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	var malformedErr *MalformedResponseError
	if errors.As(err, &malformedErr) {
		return malformedErr.Error()
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return "Could not reach the reservation service. Please try again later."
	}
	return err.Error()
}

// snippet truncates a body to snippetLimit runes without splitting one
func snippet(body []byte) string {
	if utf8.RuneCount(body) <= snippetLimit {
		return string(body)
	}
	runes := []rune(string(body))
	return string(runes[:snippetLimit])
}

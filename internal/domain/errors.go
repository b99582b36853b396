package domain

import (
	"errors"
	"fmt"
)

// ValidationError is returned for an inverted or out-of-bounds year range, or a malformed media id.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GatewayProtocolError covers transport failures, non-2xx statuses, unparsable bodies,
// GraphQL errors and responses missing the expected shape.
type GatewayProtocolError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayProtocolError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, msg)
	}
	return "gateway error: " + msg
}

func (e *GatewayProtocolError) Unwrap() error {
	return e.Err
}

// NoResultsError means the filter matches nothing at all.
type NoResultsError struct {
	Filter MediaFilter
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no anime found in the year range %d-%d", e.Filter.StartYear, e.Filter.EndYear)
}

// EmptyPageError means a selected page came back without items.
type EmptyPageError struct {
	Page int
}

func (e *EmptyPageError) Error() string {
	return fmt.Sprintf("empty results on page %d", e.Page)
}

// SamplingExhaustedError wraps the last failure once every attempt has been used.
type SamplingExhaustedError struct {
	Attempts int
	Err      error
}

func (e *SamplingExhaustedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to fetch anime after %d attempts", e.Attempts)
	}
	return fmt.Sprintf("failed to fetch anime after %d attempts: %v", e.Attempts, e.Err)
}

func (e *SamplingExhaustedError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsGatewayProtocolError(err error) bool {
	var target *GatewayProtocolError
	return errors.As(err, &target)
}

func IsNoResultsError(err error) bool {
	var target *NoResultsError
	return errors.As(err, &target)
}

func IsEmptyPageError(err error) bool {
	var target *EmptyPageError
	return errors.As(err, &target)
}

func IsSamplingExhaustedError(err error) bool {
	var target *SamplingExhaustedError
	return errors.As(err, &target)
}

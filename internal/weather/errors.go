package weather

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when the submitted place name is blank.
	ErrEmptyInput = errors.New("empty input")
	// ErrService is returned when an upstream call fails or answers non-2xx.
	ErrService = errors.New("service error")
	// ErrNotFound is returned when geocoding yields no results.
	ErrNotFound = errors.New("location not found")
	// ErrInvalidPlace is returned when no result is a populated place.
	ErrInvalidPlace = errors.New("invalid place")
)

// User-facing messages, one per error kind.
const (
	MsgEmptyInput      = "Please enter a location."
	MsgLocationService = "Could not fetch location data."
	MsgWeatherService  = "Could not fetch weather data."
	MsgNotFound        = "City not found."
	MsgInvalidPlace    = "Please enter a valid city, town, or village."
	msgUnexpected      = "Something went wrong."
)

// LookupError carries the error kind, the message shown on the card and the
// underlying cause.
type LookupError struct {
	Kind    error
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *LookupError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewServiceError wraps an upstream failure with the given user message.
func NewServiceError(message string, err error) error {
	return &LookupError{Kind: ErrService, Message: message, Err: err}
}

// NewNotFoundError reports a geocoding query with zero results.
func NewNotFoundError(query string) error {
	return &LookupError{Kind: ErrNotFound, Message: MsgNotFound, Err: errors.New("no results for " + query)}
}

// NewInvalidPlaceError reports results that are not settlements.
func NewInvalidPlaceError(query string) error {
	return &LookupError{Kind: ErrInvalidPlace, Message: MsgInvalidPlace, Err: errors.New("no populated place matches " + query)}
}

func emptyInputError() error {
	return &LookupError{Kind: ErrEmptyInput, Message: MsgEmptyInput}
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Message
	}
	return msgUnexpected
}

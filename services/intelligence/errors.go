package intelligence

import "errors"

var (
	// ErrServiceUnavailable covers any transport or API failure of the completion service.
	ErrServiceUnavailable = errors.New("completion service unavailable")
	// ErrEmptyCompletion is returned when the response has no usable text.
	ErrEmptyCompletion = errors.New("empty completion")
	// ErrInvalidRequest is returned when a request skips caller-side validation.
	ErrInvalidRequest = errors.New("invalid itinerary request")
)

package coingecko

import "errors"

var (
	// ErrDirectoryUnavailable is returned when the coin list cannot be fetched.
	ErrDirectoryUnavailable = errors.New("coin directory unavailable")
	// ErrUnknownCoin is returned when the price service has no USD price for an id.
	ErrUnknownCoin = errors.New("unknown coin")
	// ErrServiceUnavailable is returned when the price service cannot be reached
	// or answers with a non-success status.
	ErrServiceUnavailable = errors.New("price service unavailable")
)

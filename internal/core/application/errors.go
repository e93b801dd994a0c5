package application

import "errors"

var (
	// ErrServiceUnavailable is the error returned in place of any ledger
	// failure while the circuit breaker is open.
	ErrServiceUnavailable = errors.New("service is unavailable, try again later")
	// ErrMarketplaceNotInitialized is returned when a settlement is
	// attempted before the one-time marketplace configuration.
	ErrMarketplaceNotInitialized = errors.New("marketplace is not initialized")
)

package adapter

import "errors"

var (
	// ErrProviderNotConfigured is returned when a payment is attempted
	// without a configured provider secret key.
	ErrProviderNotConfigured = errors.New("payment provider is not configured")

	// ErrProviderRequestFailed is returned when the provider rejects the
	// request or cannot be reached.
	ErrProviderRequestFailed = errors.New("payment provider request failed")
)

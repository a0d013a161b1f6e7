// Package adapter contains clients for external collaborators of the
// backend. Currently the only adapter is the Stripe payment provider.
package adapter

import "context"

// PaymentIntent is the provider-side charge handle returned on creation.
type PaymentIntent struct {
	// ID is the provider intent identifier ("pi_...").
	ID string

	// ClientSecret is handed to the frontend to complete the card flow.
	ClientSecret string

	// Status is the provider-side intent status (e.g. "requires_payment_method").
	Status string
}

// PaymentProvider creates and inspects charges with an external payment
// processor.
type PaymentProvider interface {
	// CreatePaymentIntent registers a charge of amount (smallest currency
	// unit) in the given currency. The metadata is attached to the intent
	// for reconciliation (booking and user identifiers).
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (PaymentIntent, error)

	// GetPaymentIntent fetches the current provider-side state of an
	// intent. The card flow completes on the provider, so this is how the
	// backend learns whether a charge went through.
	GetPaymentIntent(ctx context.Context, intentID string) (PaymentIntent, error)
}

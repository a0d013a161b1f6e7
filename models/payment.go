package models

import "time"

// Payment statuses mirror the lifecycle of the provider-side intent.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// Payment records one charge attempt for a booking. The actual card flow
// happens on the provider side; this row links the booking to the provider
// intent so the frontend can complete the payment with the client secret.
type Payment struct {
	// PaymentID is the unique identifier of the charge record (UUID string).
	PaymentID string `json:"id"`

	// BookingID is the reservation being paid for.
	BookingID string `json:"booking_id"`

	// UserID is the paying customer.
	UserID string `json:"user_id"`

	// Amount is the charged amount in the smallest currency unit.
	Amount int64 `json:"amount"`

	// Currency is the ISO 4217 code, lowercase (e.g. "usd").
	Currency string `json:"currency"`

	// Status is one of the PaymentStatus* constants.
	Status string `json:"status"`

	// ProviderIntentID is the Stripe PaymentIntent identifier.
	ProviderIntentID string `json:"provider_intent_id"`

	// ClientSecret is returned once at creation so the frontend can
	// confirm the intent. Never persisted.
	ClientSecret string `json:"client_secret,omitempty"`

	// CreatedAt is the charge record creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Payment model.
func (p Payment) TableName() string {
	return "payments"
}

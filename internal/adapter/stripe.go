package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/go-resty/resty/v2"
)

// StripeConfig holds the settings of the Stripe adapter.
type StripeConfig struct {
	// SecretKey is the Stripe secret API key ("sk_test_..." / "sk_live_...").
	SecretKey string

	// BaseURL overrides the Stripe API endpoint; used by tests to point
	// the client at an httptest server.
	BaseURL string

	// Timeout bounds each provider call.
	Timeout time.Duration
}

// stripeProvider implements [PaymentProvider] against the Stripe
// PaymentIntents API. Stripe speaks form-encoded requests and JSON
// responses; amounts are in the smallest currency unit.
type stripeProvider struct {
	client *resty.Client
	logger *logger.Logger
}

// stripeIntentResponse is the subset of the PaymentIntent object we consume.
type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Error        *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewStripeProvider constructs a [PaymentProvider] backed by the Stripe API.
func NewStripeProvider(cfg StripeConfig, logger *logger.Logger) PaymentProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.stripe.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.SecretKey)

	return &stripeProvider{client: cli, logger: logger}
}

// CreatePaymentIntent registers a charge with Stripe and returns the intent
// handle. The secret key travels as a bearer token; it is never logged.
func (s *stripeProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (PaymentIntent, error) {
	log := logger.FromContext(ctx)

	if s.client.Token == "" {
		return PaymentIntent{}, ErrProviderNotConfigured
	}

	form := map[string]string{
		"amount":   strconv.FormatInt(amount, 10),
		"currency": currency,
	}
	for k, v := range metadata {
		form["metadata["+k+"]"] = v
	}

	var intent stripeIntentResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&intent).
		SetError(&intent).
		Post("/v1/payment_intents")
	if err != nil {
		log.Err(err).Msg("stripe request failed")
		return PaymentIntent{}, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}

	if resp.IsError() {
		message := "unknown provider error"
		if intent.Error != nil {
			message = intent.Error.Message
		}
		log.Error().
			Int("status", resp.StatusCode()).
			Str("provider_error", message).
			Msg("stripe rejected payment intent")
		return PaymentIntent{}, fmt.Errorf("%w: status %d", ErrProviderRequestFailed, resp.StatusCode())
	}

	return PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
	}, nil
}

// GetPaymentIntent retrieves the current state of an intent from Stripe.
func (s *stripeProvider) GetPaymentIntent(ctx context.Context, intentID string) (PaymentIntent, error) {
	log := logger.FromContext(ctx)

	if s.client.Token == "" {
		return PaymentIntent{}, ErrProviderNotConfigured
	}

	var intent stripeIntentResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&intent).
		SetError(&intent).
		Get("/v1/payment_intents/" + intentID)
	if err != nil {
		log.Err(err).Msg("stripe request failed")
		return PaymentIntent{}, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}

	if resp.IsError() {
		message := "unknown provider error"
		if intent.Error != nil {
			message = intent.Error.Message
		}
		log.Error().
			Int("status", resp.StatusCode()).
			Str("provider_error", message).
			Msg("stripe rejected intent lookup")
		return PaymentIntent{}, fmt.Errorf("%w: status %d", ErrProviderRequestFailed, resp.StatusCode())
	}

	return PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
	}, nil
}

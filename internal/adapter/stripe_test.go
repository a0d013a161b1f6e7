package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeProvider_CreatePaymentIntent(t *testing.T) {
	var gotAuth string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)

		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":            "pi_123",
			"client_secret": "pi_123_secret",
			"status":        "requires_payment_method",
		})
	}))
	defer srv.Close()

	provider := NewStripeProvider(StripeConfig{
		SecretKey: "sk_test_abc",
		BaseURL:   srv.URL,
	}, logger.Nop())

	intent, err := provider.CreatePaymentIntent(context.Background(), 13500, "usd", map[string]string{"booking_id": "b1"})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, "requires_payment_method", intent.Status)

	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
	assert.Equal(t, []string{"13500"}, gotForm["amount"])
	assert.Equal(t, []string{"usd"}, gotForm["currency"])
	assert.Equal(t, []string{"b1"}, gotForm["metadata[booking_id]"])
}

func TestStripeProvider_CreatePaymentIntent_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"message": "Your card was declined.",
				"type":    "card_error",
			},
		})
	}))
	defer srv.Close()

	provider := NewStripeProvider(StripeConfig{
		SecretKey: "sk_test_abc",
		BaseURL:   srv.URL,
	}, logger.Nop())

	_, err := provider.CreatePaymentIntent(context.Background(), 13500, "usd", nil)
	assert.ErrorIs(t, err, ErrProviderRequestFailed)
}

func TestStripeProvider_CreatePaymentIntent_NotConfigured(t *testing.T) {
	provider := NewStripeProvider(StripeConfig{}, logger.Nop())

	_, err := provider.CreatePaymentIntent(context.Background(), 13500, "usd", nil)
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestStripeProvider_GetPaymentIntent(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)

		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"id":            "pi_123",
			"client_secret": "pi_123_secret",
			"status":        "succeeded",
		})
	}))
	defer srv.Close()

	provider := NewStripeProvider(StripeConfig{
		SecretKey: "sk_test_abc",
		BaseURL:   srv.URL,
	}, logger.Nop())

	intent, err := provider.GetPaymentIntent(context.Background(), "pi_123")
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "succeeded", intent.Status)
	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
}

func TestStripeProvider_GetPaymentIntent_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{
				"message": "No such payment_intent: 'pi_404'",
				"type":    "invalid_request_error",
			},
		})
	}))
	defer srv.Close()

	provider := NewStripeProvider(StripeConfig{
		SecretKey: "sk_test_abc",
		BaseURL:   srv.URL,
	}, logger.Nop())

	_, err := provider.GetPaymentIntent(context.Background(), "pi_404")
	assert.ErrorIs(t, err, ErrProviderRequestFailed)
}

func TestStripeProvider_GetPaymentIntent_NotConfigured(t *testing.T) {
	provider := NewStripeProvider(StripeConfig{}, logger.Nop())

	_, err := provider.GetPaymentIntent(context.Background(), "pi_123")
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

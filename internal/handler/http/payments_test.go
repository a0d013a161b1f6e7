package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/config"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/service"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentService implements service.PaymentService with injectable
// behaviour.
type fakePaymentService struct {
	createIntentFn   func(ctx context.Context, userID, bookingID string) (models.Payment, error)
	confirmPaymentFn func(ctx context.Context, userID, paymentID string) (models.Payment, error)
	getPaymentFn     func(ctx context.Context, userID, paymentID string) (models.Payment, error)
}

func (f *fakePaymentService) CreateIntent(ctx context.Context, userID, bookingID string) (models.Payment, error) {
	return f.createIntentFn(ctx, userID, bookingID)
}

func (f *fakePaymentService) ConfirmPayment(ctx context.Context, userID, paymentID string) (models.Payment, error) {
	return f.confirmPaymentFn(ctx, userID, paymentID)
}

func (f *fakePaymentService) GetPayment(ctx context.Context, userID, paymentID string) (models.Payment, error) {
	return f.getPaymentFn(ctx, userID, paymentID)
}

func newHandlerWithPaymentService(paymentSvc service.PaymentService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		cfg:    &config.StructuredConfig{},
		services: &service.Services{
			PaymentService: paymentSvc,
		},
	}
}

func paymentRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/api/payments/intent", h.createPaymentIntent)
	r.Post("/api/payments/{id}/confirm", h.confirmPayment)
	r.Get("/api/payments/{id}", h.getPayment)
	return r
}

func TestCreatePaymentIntent(t *testing.T) {
	var gotUserID, gotBookingID string
	h := newHandlerWithPaymentService(&fakePaymentService{
		createIntentFn: func(_ context.Context, userID, bookingID string) (models.Payment, error) {
			gotUserID = userID
			gotBookingID = bookingID
			return models.Payment{PaymentID: "p1", BookingID: bookingID, UserID: userID, Status: models.PaymentStatusPending}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/intent", strings.NewReader(`{"booking_id":"b1"}`))
	req = injectNopLogger(req)
	req = withPrincipal(req, models.User{UserID: "u1"})
	rr := httptest.NewRecorder()
	paymentRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "u1", gotUserID)
	assert.Equal(t, "b1", gotBookingID)
}

func TestConfirmPayment(t *testing.T) {
	var gotUserID, gotPaymentID string
	h := newHandlerWithPaymentService(&fakePaymentService{
		confirmPaymentFn: func(_ context.Context, userID, paymentID string) (models.Payment, error) {
			gotUserID = userID
			gotPaymentID = paymentID
			return models.Payment{PaymentID: paymentID, UserID: userID, Status: models.PaymentStatusSucceeded}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/p1/confirm", nil)
	req = injectNopLogger(req)
	req = withPrincipal(req, models.User{UserID: "u1"})
	rr := httptest.NewRecorder()
	paymentRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u1", gotUserID)
	assert.Equal(t, "p1", gotPaymentID)

	var body models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestConfirmPayment_NoPrincipal(t *testing.T) {
	h := newHandlerWithPaymentService(&fakePaymentService{
		confirmPaymentFn: func(_ context.Context, _, _ string) (models.Payment, error) {
			t.Fatal("service must not be reached without a principal")
			return models.Payment{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/p1/confirm", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	paymentRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Not authorized, token missing", body.Message)
}

func TestConfirmPayment_NotOwner(t *testing.T) {
	h := newHandlerWithPaymentService(&fakePaymentService{
		confirmPaymentFn: func(_ context.Context, _, _ string) (models.Payment, error) {
			return models.Payment{}, service.ErrNotResourceOwner
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/p1/confirm", nil)
	req = injectNopLogger(req)
	req = withPrincipal(req, models.User{UserID: "u2"})
	rr := httptest.NewRecorder()
	paymentRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGetPayment(t *testing.T) {
	h := newHandlerWithPaymentService(&fakePaymentService{
		getPaymentFn: func(_ context.Context, userID, paymentID string) (models.Payment, error) {
			return models.Payment{PaymentID: paymentID, UserID: userID}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/payments/p1", nil)
	req = injectNopLogger(req)
	req = withPrincipal(req, models.User{UserID: "u1"})
	rr := httptest.NewRecorder()
	paymentRouter(h).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

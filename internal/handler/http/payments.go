package http

import (
	"encoding/json"
	"net/http"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/go-chi/chi/v5"
)

// createIntentRequest is the payload of POST /api/payments/intent.
type createIntentRequest struct {
	BookingID string `json:"booking_id"`
}

// createPaymentIntent handles POST /api/payments/intent (protected). It
// registers a provider charge for the caller's booking and returns the
// pending payment record including the one-time client secret.
func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		utils.WriteJSON(w, models.Fail(msgTokenMissing), http.StatusUnauthorized)
		return
	}

	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed payment payload")
		utils.WriteJSON(w, models.Fail("Invalid request data"), http.StatusBadRequest)
		return
	}

	payment, err := h.services.PaymentService.CreateIntent(r.Context(), user.UserID, req.BookingID)
	if err != nil {
		log.Err(err).Msg("payment intent creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(payment), http.StatusCreated)
}

// confirmPayment handles POST /api/payments/{id}/confirm (protected, owner
// only). It re-reads the provider intent and settles the payment and its
// booking accordingly.
func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		utils.WriteJSON(w, models.Fail(msgTokenMissing), http.StatusUnauthorized)
		return
	}

	payment, err := h.services.PaymentService.ConfirmPayment(r.Context(), user.UserID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("payment confirmation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(payment), http.StatusOK)
}

// getPayment handles GET /api/payments/{id} (protected, owner only).
func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		utils.WriteJSON(w, models.Fail(msgTokenMissing), http.StatusUnauthorized)
		return
	}

	payment, err := h.services.PaymentService.GetPayment(r.Context(), user.UserID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("payment lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(payment), http.StatusOK)
}

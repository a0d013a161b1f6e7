package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/go-chi/chi/v5"
)

// createBookingRequest is the payload of POST /api/bookings.
type createBookingRequest struct {
	CarID      string    `json:"car_id"`
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
}

// createBooking handles POST /api/bookings (protected). The owner is the
// authenticated principal; the price is computed server-side.
func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		utils.WriteJSON(w, models.Fail(msgTokenMissing), http.StatusUnauthorized)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed booking payload")
		utils.WriteJSON(w, models.Fail("Invalid request data"), http.StatusBadRequest)
		return
	}

	booking := models.Booking{
		CarID:      req.CarID,
		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
	}

	created, err := h.services.BookingService.CreateBooking(r.Context(), user.UserID, booking)
	if err != nil {
		log.Err(err).Msg("booking creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(created), http.StatusCreated)
}

// listMyBookings handles GET /api/bookings/my (protected).
func (h *Handler) listMyBookings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		utils.WriteJSON(w, models.Fail(msgTokenMissing), http.StatusUnauthorized)
		return
	}

	bookings, err := h.services.BookingService.ListMyBookings(r.Context(), user.UserID)
	if err != nil {
		log.Err(err).Msg("booking listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(bookings), http.StatusOK)
}

// getBooking handles GET /api/bookings/{id} (protected, owner only).
func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		utils.WriteJSON(w, models.Fail(msgTokenMissing), http.StatusUnauthorized)
		return
	}

	booking, err := h.services.BookingService.GetBooking(r.Context(), user.UserID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("booking lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(booking), http.StatusOK)
}

// cancelBooking handles POST /api/bookings/{id}/cancel (protected, owner only).
func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("no principal in context on a protected route")
		utils.WriteJSON(w, models.Fail(msgTokenMissing), http.StatusUnauthorized)
		return
	}

	booking, err := h.services.BookingService.CancelBooking(r.Context(), user.UserID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("booking cancellation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(booking), http.StatusOK)
}

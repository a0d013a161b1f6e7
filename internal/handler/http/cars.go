package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/go-chi/chi/v5"
)

// listCars handles GET /api/cars. All filter query parameters are optional:
// category, transmission, fuel, location, min_seats, max_price, available.
func (h *Handler) listCars(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := carFilterFromQuery(r)

	cars, err := h.services.CarService.ListCars(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("car listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(cars), http.StatusOK)
}

// getCar handles GET /api/cars/{id}.
func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	car, err := h.services.CarService.GetCar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("car lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(car), http.StatusOK)
}

// createCar handles POST /api/cars (protected).
func (h *Handler) createCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		log.Debug().Err(err).Msg("malformed car payload")
		utils.WriteJSON(w, models.Fail("Invalid request data"), http.StatusBadRequest)
		return
	}

	created, err := h.services.CarService.CreateCar(r.Context(), car)
	if err != nil {
		log.Err(err).Msg("car creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(created), http.StatusCreated)
}

// updateCar handles PUT /api/cars/{id} (protected).
func (h *Handler) updateCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		log.Debug().Err(err).Msg("malformed car payload")
		utils.WriteJSON(w, models.Fail("Invalid request data"), http.StatusBadRequest)
		return
	}
	car.CarID = chi.URLParam(r, "id")

	updated, err := h.services.CarService.UpdateCar(r.Context(), car)
	if err != nil {
		log.Err(err).Msg("car update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(updated), http.StatusOK)
}

// deleteCar handles DELETE /api/cars/{id} (protected).
func (h *Handler) deleteCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.CarService.DeleteCar(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("car deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.OK(nil), http.StatusOK)
}

func carFilterFromQuery(r *http.Request) models.CarFilter {
	q := r.URL.Query()

	filter := models.CarFilter{
		Category:     q.Get("category"),
		Transmission: q.Get("transmission"),
		FuelType:     q.Get("fuel"),
		Location:     q.Get("location"),
	}

	if v, err := strconv.Atoi(q.Get("min_seats")); err == nil && v > 0 {
		filter.MinSeats = v
	}
	if v, err := strconv.ParseInt(q.Get("max_price"), 10, 64); err == nil && v > 0 {
		filter.MaxPricePerDay = v
	}
	if v, err := strconv.ParseBool(q.Get("available")); err == nil {
		filter.AvailableOnly = v
	}

	return filter
}

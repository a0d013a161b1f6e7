package http

import (
	"errors"
	"net/http"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/adapter"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/service"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrCarUnavailable:      http.StatusConflict,
	service.ErrNotResourceOwner:    http.StatusForbidden,

	store.ErrCarNotFound:     http.StatusNotFound,
	store.ErrBookingNotFound: http.StatusNotFound,
	store.ErrPaymentNotFound: http.StatusNotFound,
	store.ErrDuplicateRecord: http.StatusConflict,

	adapter.ErrProviderNotConfigured: http.StatusServiceUnavailable,
	adapter.ErrProviderRequestFailed: http.StatusBadGateway,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// userFacingMessages overrides the default message for errors whose wrapped
// text would expose internals.
var userFacingMessages = map[error]string{
	service.ErrInvalidDataProvided: "Invalid request data",
	service.ErrCarUnavailable:      "Car is not available for the requested dates",
	service.ErrNotResourceOwner:    "Access to this resource is not allowed",

	store.ErrCarNotFound:     "Car not found",
	store.ErrBookingNotFound: "Booking not found",
	store.ErrPaymentNotFound: "Payment not found",
	store.ErrDuplicateRecord: "Record already exists",

	adapter.ErrProviderNotConfigured: "Payments are not configured",
	adapter.ErrProviderRequestFailed: "Payment provider is unavailable",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError converts a service/store error into the uniform failure
// envelope. Unrecognised errors become a generic 500 so that internal
// detail never leaks; the caller is expected to have logged the cause.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := "Internal server error"
	for target, text := range userFacingMessages {
		if errors.Is(err, target) {
			message = text
			break
		}
	}

	utils.WriteJSON(w, models.Fail(message), status)
}

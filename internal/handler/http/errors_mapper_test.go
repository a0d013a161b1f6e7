package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/adapter"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/service"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid data",
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request data",
		},
		{
			name:       "car unavailable",
			err:        service.ErrCarUnavailable,
			wantStatus: http.StatusConflict,
			wantMsg:    "Car is not available for the requested dates",
		},
		{
			name:       "not resource owner",
			err:        service.ErrNotResourceOwner,
			wantStatus: http.StatusForbidden,
			wantMsg:    "Access to this resource is not allowed",
		},
		{
			name:       "car not found",
			err:        store.ErrCarNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Car not found",
		},
		{
			name:       "booking not found",
			err:        store.ErrBookingNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Booking not found",
		},
		{
			name:       "provider not configured",
			err:        adapter.ErrProviderNotConfigured,
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Payments are not configured",
		},
		{
			name:       "provider request failed",
			err:        adapter.ErrProviderRequestFailed,
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Payment provider is unavailable",
		},
		{
			name:       "wrapped error is still recognised",
			err:        fmt.Errorf("booking lookup failed: %w", store.ErrBookingNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Booking not found",
		},
		{
			name:       "unknown error never leaks its text",
			err:        errors.New("pq: connection refused at 10.1.2.3"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

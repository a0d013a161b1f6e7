package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

// ping handles GET /api/ping, a bare liveness probe.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]any{
		"ok":   true,
		"time": time.Now().UnixMilli(),
	}, http.StatusOK)
}

// health handles GET /api/health. It reports configuration presence and
// collaborator reachability without exposing secret values: the database
// is pinged, the Stripe key is reduced to a prefix, and the JWT secret is
// reported only as configured/using-default. The insecure signing-key
// fallback surfaces here as a warning, never as a boot failure.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report := models.Health{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Warnings:  []string{},
		Errors:    []string{},
	}

	if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("health: database ping failed")
		report.Services.Database.Connected = false
		report.Errors = append(report.Errors, "database is unreachable")
		report.Status = "degraded"
	} else {
		report.Services.Database.Connected = true
	}

	stripeKey := h.cfg.Payments.StripeSecretKey
	report.Services.Stripe.Configured = stripeKey != ""
	if stripeKey == "" {
		report.Errors = append(report.Errors, "stripe secret key is not set - payments will fail")
		report.Status = "degraded"
	} else {
		if len(stripeKey) > 7 {
			report.Services.Stripe.KeyPrefix = stripeKey[:7] + "..."
		}
		if !strings.HasPrefix(stripeKey, "sk_") {
			report.Warnings = append(report.Warnings, "stripe secret key format may be invalid (should start with 'sk_')")
		}
	}

	report.Services.JWT.Configured = h.cfg.Auth.TokenSignKey != ""
	report.Services.JWT.UsingDefault = h.cfg.UsingDefaultTokenSignKey()
	if report.Services.JWT.UsingDefault {
		report.Warnings = append(report.Warnings, "token signing key is using the default value - must be changed for production")
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/metrics"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/service"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

// bearerScheme is the exact credential scheme prefix: the literal scheme
// name, case-sensitive, followed by exactly one separator space.
const bearerScheme = "Bearer "

// auth is the HTTP middleware that gates every protected route. Per request
// it runs three stages strictly in sequence — extract the bearer credential,
// verify it, resolve its subject to a user — and either stores the resolved
// user in the request context or rejects with a single 401 JSON response.
// The first failing stage wins; later stages never run and no partial
// result is attached.
//
// Rejection reasons are distinguishable by message text:
//   - header absent or not "Bearer "-prefixed → "Not authorized, token missing"
//   - malformed token or bad signature       → "Invalid token. Please log in again."
//   - expired token                          → "Token expired. Please log in again."
//   - subject with no matching account       → "User not found"
//
// A header of exactly "Bearer " carries an empty credential: the prefix
// precondition holds, so the empty string goes to the verifier and fails
// there as malformed.
//
// Unexpected verifier/resolver faults are logged with their cause and
// surfaced with the generic invalid-token text; library error detail never
// reaches the response body. Authentication failures are never retried here.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request rejected: no usable credential")
			h.reject(w, "missing", msgTokenMissing)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Debug().Msg("request rejected: token expired")
				h.reject(w, "expired", msgTokenExpired)
			default:
				log.Debug().Msg("request rejected: token invalid")
				h.reject(w, "invalid", msgTokenInvalid)
			}
			return
		}

		user, err := h.services.AuthService.ResolveUser(ctx, token.UserID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserNotFound):
				log.Debug().Str("user_id", token.UserID).Msg("request rejected: user not found")
				h.reject(w, "user_not_found", msgUserNotFound)
			default:
				// Store-level fault: logged with its cause, surfaced with
				// the generic invalid-token text.
				log.Err(err).Msg("error occurred during resolving user")
				h.reject(w, "resolver_error", msgTokenInvalid)
			}
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// reject emits the single 401 JSON response of a denied request:
// {"success": false, "message": <text>}. The reason label feeds the
// rejection counter only and is not user-visible.
func (h *Handler) reject(w http.ResponseWriter, reason, message string) {
	metrics.AuthRejections.WithLabelValues(reason).Inc()
	utils.WriteJSON(w, models.Fail(message), http.StatusUnauthorized)
}

// bearerToken extracts the credential string from a raw "Authorization"
// HTTP header value.
//
// The header must follow the exact format:
//
//	Authorization: Bearer <token>
//
// The scheme name is case-sensitive and must be followed by exactly one
// space; everything after the prefix is returned unmodified (no trimming).
// An empty remainder is not an extraction failure: the credential is the
// empty string and the verifier rejects it as malformed.
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — the header is absent or empty.
//   - [ErrMissingBearerPrefix] — the header does not start with "Bearer ".
func bearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	if !strings.HasPrefix(authHeader, bearerScheme) {
		return "", ErrMissingBearerPrefix
	}

	return authHeader[len(bearerScheme):], nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/config"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of [AuthService]. It is the
// credential verifier and principal resolver behind the HTTP auth gate:
// pure JWT verification against the configured signing secret, then a
// read-only lookup against the user store.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to verify JWT signatures.
	// Falls back to the documented insecure default when unconfigured.
	tokenSignKey string

	// now is the injectable clock used for the expiry check. Verification
	// is a pure function of (token, tokenSignKey, now()).
	now func() time.Time

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with security parameters from cfg.
//
// An empty signing key falls back to [config.DefaultTokenSignKey]; the
// health endpoint is responsible for warning operators about that state.
// Passing a nil now installs time.Now.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, now func() time.Time, logger *logger.Logger) AuthService {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		signKey = config.DefaultTokenSignKey
	}
	if now == nil {
		now = time.Now
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   signKey,
		now:            now,
		logger:         logger,
	}
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken (structural decode →
// signature → expiry, first failure wins) and normalises the outcome to
// the service's two-way failure sum:
//   - expired token → ErrTokenExpired;
//   - anything else (malformed, bad signature, wrong algorithm, missing
//     subject) → ErrTokenInvalid.
//
// The underlying library error is logged for operators and never travels
// past this method, so callers cannot leak it into a response.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Err(err).Msg("token verification failed: expired")
			return models.Token{}, ErrTokenExpired
		}

		log.Debug().Err(err).Msg("token verification failed")
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// ResolveUser fetches the user record referenced by a verified subject
// identifier and strips the stored credential hash before returning it.
//
// Returns:
//   - ErrInvalidDataProvided if userID is empty;
//   - ErrUserNotFound if no account matches (the token was valid but the
//     identity is gone, e.g. a deleted account);
//   - a wrapped storage error for any other repository failure.
func (a *authService) ResolveUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("empty user ID provided for resolution")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", userID).Msg("token subject has no matching account")
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	// The hash never leaves the service layer.
	user.PasswordHash = ""

	return user, nil
}

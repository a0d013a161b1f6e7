package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token includes the following standard claims:
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// The now function supplies the clock so that tests can mint tokens at an
// arbitrary point in time. Returns an error if any parameter is empty or
// zero.
func GenerateJWTToken(userID string, tokenDuration time.Duration, signKey string, now func() time.Time) (models.Token, error) {
	if userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}
	if now == nil {
		now = time.Now
	}

	issuedAt := now()
	claims := &jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// claims.
//
// Validation is a sequence of hard gates, first failure wins:
//  1. structural decode of the three-part compact form;
//  2. HMAC-SHA256 signature verification against signKey (other signing
//     methods are rejected outright);
//  3. expiry: now() must be strictly before the "exp" claim, no leeway.
//
// The now function is the injectable clock used for the expiry check;
// passing nil falls back to time.Now. Verification is a pure function of
// (tokenString, signKey, now).
//
// The returned token carries the "sub" claim in UserID. Expired tokens are
// reported with an error matching [jwt.ErrTokenExpired] via errors.Is;
// every other failure keeps its underlying golang-jwt error so callers can
// log the cause.
func ValidateAndParseJWTToken(tokenString, signKey string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject claim")
	}

	return models.Token{Token: token, UserID: userID}, nil
}

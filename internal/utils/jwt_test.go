package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signKey = "jwt-test-sign-key"

var mintTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func mintClock() time.Time { return mintTime }

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("u1", time.Hour, signKey, mintClock)
	require.NoError(t, err)

	assert.Equal(t, "u1", token.UserID)
	assert.NotEmpty(t, token.SignedString)

	// The compact form must round-trip through verification.
	parsed, err := ValidateAndParseJWTToken(token.SignedString, signKey, mintClock)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)

	expiry, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, mintTime.Add(time.Hour).Unix(), expiry.Unix())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty user ID", userID: "", duration: time.Hour, signKey: signKey},
		{name: "zero duration", userID: "u1", duration: 0, signKey: signKey},
		{name: "empty sign key", userID: "u1", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.userID, tt.duration, tt.signKey, mintClock)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("u1", time.Hour, signKey, mintClock)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, signKey, func() time.Time {
		return mintTime.Add(2 * time.Hour)
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("u1", time.Hour, signKey, mintClock)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key", mintClock)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("garbage", signKey, mintClock)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestValidateAndParseJWTToken_RejectsUnsignedToken(t *testing.T) {
	// alg "none" must never verify, even with a correct payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(mintTime.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(mintTime),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, signKey, mintClock)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsMissingExpiry(t *testing.T) {
	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:  "u1",
		IssuedAt: jwt.NewNumericDate(mintTime),
	})
	tokenString, err := noExpiry.SignedString([]byte(signKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, signKey, mintClock)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsEmptySubject(t *testing.T) {
	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(mintTime.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(mintTime),
	})
	tokenString, err := noSubject.SignedString([]byte(signKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, signKey, mintClock)
	assert.Error(t, err)
}

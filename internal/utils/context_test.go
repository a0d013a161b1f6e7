package utils

import (
	"context"
	"testing"

	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalFromContext(t *testing.T) {
	want := models.User{UserID: "u1", Name: "Alice", Role: "user"}
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, want)

	got, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestPrincipalFromContext_Missing(t *testing.T) {
	got, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, got.UserID)
}

func TestPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not a user")

	_, ok := PrincipalFromContext(ctx)
	assert.False(t, ok)
}

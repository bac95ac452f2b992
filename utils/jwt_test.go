package utils

import (
	"testing"

	"portfolio-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndDecodeJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(models.User{
		ID:    "admin-id",
		Email: "admin@example.com",
		Role:  "admin",
	}, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := DecodeJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin-id", claims["user_id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestDecodeJWT_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")

	token, err := GenerateJWT(models.User{ID: "admin-id", Email: "admin@example.com"}, 1)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")

	_, err = DecodeJWT(token)
	assert.Error(t, err)
}

func TestDecodeJWT_RejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(models.User{ID: "admin-id", Email: "admin@example.com"}, -1)
	assert.NoError(t, err)

	_, err = DecodeJWT(token)
	assert.Error(t, err)
}

func TestDecodeJWT_RejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := DecodeJWT("not.a.token")
	assert.Error(t, err)
}

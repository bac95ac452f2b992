package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"user.name+tag@example.co.uk",
		"UPPER@EXAMPLE.COM",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"missing-domain@",
		"spaces in@example.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM  "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestFormatValidationErrors(t *testing.T) {
	type payload struct {
		Name    string `validate:"required,min=2,max=100"`
		Email   string `validate:"required,email"`
		Message string `validate:"required,min=10,max=1000"`
	}

	validate := validator.New()
	err := validate.Struct(payload{
		Name:    "A",
		Email:   "not-an-email",
		Message: "short",
	})
	assert.Error(t, err)

	fieldErrors := FormatValidationErrors(err)
	assert.Len(t, fieldErrors, 3)

	byField := map[string]string{}
	for _, fe := range fieldErrors {
		byField[fe.Field] = fe.Message
	}

	assert.Contains(t, byField["name"], "at least 2 characters")
	assert.Contains(t, byField["email"], "valid email")
	assert.Contains(t, byField["message"], "at least 10 characters")
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	fieldErrors := FormatValidationErrors(assert.AnError)
	assert.Len(t, fieldErrors, 1)
	assert.Equal(t, "body", fieldErrors[0].Field)
}

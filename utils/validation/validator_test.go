package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane@example.com"))
	assert.True(t, ValidateEmail("jane.doe+tag@sub.example.co"))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidateUsername(t *testing.T) {
	ok, _ := ValidateUsername("jane_doe-99")
	assert.True(t, ok)

	ok, msg := ValidateUsername("ab")
	assert.False(t, ok)
	assert.Contains(t, msg, "at least 3")

	ok, msg = ValidateUsername("jane doe")
	assert.False(t, ok)
	assert.Contains(t, msg, "can only contain")
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "hello", SanitizeString("hel\x00lo"))
	assert.Equal(t, "", SanitizeString("   "))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}

	v := NewValidator()

	assert.NoError(t, v.ValidateStruct(payload{Email: "a@b.co", Name: "Jo"}))

	err := v.ValidateStruct(payload{Email: "bad", Name: ""})
	assert.Error(t, err)

	fields := FormatValidationErrors(err)
	assert.Equal(t, "Invalid email format", fields["email"])
	assert.Contains(t, fields["name"], "required")
}

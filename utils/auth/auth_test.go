package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "codesmentors-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := testManager()

	token, err := manager.GenerateToken(42, "jane@example.com", "admin", "jane")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, "codesmentors-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := testManager().GenerateToken(1, "a@b.c", "student", "ab")
	require.NoError(t, err)

	other := NewJWTManager(JWTConfig{
		Secret: "different-secret",
		Expiry: time.Hour,
		Issuer: "codesmentors-test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	manager := NewJWTManager(JWTConfig{
		Secret: "test-secret",
		Expiry: -time.Minute,
		Issuer: "codesmentors-test",
	})

	token, err := manager.GenerateToken(1, "a@b.c", "student", "ab")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := testManager().ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, VerifyPassword(hash, "secret123"))
	assert.Error(t, VerifyPassword(hash, "wrong-password"))
}

func TestIsPasswordValid(t *testing.T) {
	assert.False(t, IsPasswordValid(""))
	assert.False(t, IsPasswordValid("12345"))
	assert.True(t, IsPasswordValid("123456"))
	assert.True(t, IsPasswordValid("a much longer passphrase"))
}

func TestGenerateOTPFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		otp := GenerateOTP()
		require.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
		assert.GreaterOrEqual(t, otp, "100000")
		seen[otp] = true
	}
	// 50 draws out of 900000 values colliding into one would mean a broken generator
	assert.Greater(t, len(seen), 1)
}

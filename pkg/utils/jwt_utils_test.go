package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	token, err := GenerateAccessToken(42, "admin@lab.test", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@lab.test", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "arlab-backend", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	SetJWTSecret("unit-test-secret")
	token, err := GenerateAccessToken(42, "admin@lab.test", "admin")
	require.NoError(t, err)

	SetJWTSecret("a-different-secret")
	defer SetJWTSecret("unit-test-secret")

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsExpiredToken(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 42,
		Email:  "admin@lab.test",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-13 * time.Hour)),
			Issuer:    "arlab-backend",
		},
	})
	tokenString, err := expired.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_RejectsUnsignedToken(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 42})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

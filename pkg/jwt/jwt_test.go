package jwt_test

import (
	"testing"
	"time"

	jwtPkg "github.com/eventify/eventify-backend/pkg/jwt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := jwtPkg.Generate(42, "user")
	require.NoError(t, err)

	claims, err := jwtPkg.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, time.Now().Add(jwtPkg.TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsMalformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := jwtPkg.Validate("definitely-not-a-token")
	assert.ErrorIs(t, err, jwtPkg.ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := jwtPkg.Generate(1, "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = jwtPkg.Validate(token)
	assert.ErrorIs(t, err, jwtPkg.ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwtPkg.Claims{
		UserID: 1,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = jwtPkg.Validate(expired)
	assert.ErrorIs(t, err, jwtPkg.ErrInvalidToken)
}

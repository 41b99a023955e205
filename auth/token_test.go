package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueValidateRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestValidateRejectsTamperedSignature(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	_, err = svc.Validate(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issued, err := NewTokenService("other-secret").Issue("alice")
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Validate(issued)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsMissingExpiry(t *testing.T) {
	claims := Claims{Username: "alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsEmptyUsername(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	claims := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewTokenService(testSecret).Validate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

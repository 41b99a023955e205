package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's expiry has passed
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for any malformed or tampered token
	ErrTokenInvalid = errors.New("invalid token")
)

// tokenTTL is how long issued tokens stay valid. Tokens are not revocable
// before expiry; there is no server-side session state.
const tokenTTL = 30 * 24 * time.Hour

// Claims is the signed token payload
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed bearer tokens
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the given secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token carrying the username, valid for 30 days
func (s *TokenService) Issue(username string) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the embedded username.
// A token without an expiry claim is rejected outright.
func (s *TokenService) Validate(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Username == "" {
		return "", ErrTokenInvalid
	}

	return claims.Username, nil
}

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the typed JWT payload. Tokens carry only the subject's email;
// roles are looked up from the store at check time so a promotion takes
// effect without re-issuing tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed identity tokens. It is stateless:
// verification is a signature and expiry check only, no store round-trip.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a service signing HS256 tokens valid for ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed JWT for the given subject email.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string. Malformed, tampered and
// expired tokens all come back as errors; callers treat them alike.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

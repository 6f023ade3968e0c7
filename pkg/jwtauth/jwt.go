package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"campus-market/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the token payload: exactly the user id and email. Role and
// status are intentionally absent; authorization reads them fresh from the
// database on every role-gated request.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-signed session tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(config utils.JWTConfig) *TokenService {
	return &TokenService{
		secret: []byte(config.Secret),
		expiry: time.Duration(config.ExpiryHours) * time.Hour,
	}
}

// Issue creates a signed token valid for the configured window.
func (s *TokenService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a signed token. Expiry, a bad signature and
// malformed input all come back as an error; callers treat any failure
// identically as unauthenticated.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

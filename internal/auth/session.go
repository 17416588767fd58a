package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/middleware"

	apperrors "github.com/MAnojSHA5799/Candebrilla-web-1/pkg/errors"
)

// RoleAdmin is the only role the session gate issues.
const RoleAdmin = "admin"

// sessionClaims represents the JWT claims for an admin session token.
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Gate authenticates the single admin identity against a fixed credential
// pair and issues short-lived session tokens.
type Gate struct {
	email    string
	password string
	secret   []byte
	ttl      time.Duration
}

// NewGate creates a session gate for the given admin credentials.
func NewGate(email, password, secret string, ttl time.Duration) *Gate {
	return &Gate{
		email:    email,
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// Login checks the submitted credentials and returns a signed session
// token. Both fields are compared in constant time; a mismatch in either
// yields the same error.
func (g *Gate) Login(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(g.email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password))
	if emailOK&passwordOK != 1 {
		return "", apperrors.Unauthorized("invalid credentials")
	}

	now := time.Now().UTC()
	claims := &sessionClaims{
		Email: g.email,
		Role:  RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   g.email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
			Issuer:    "catalog-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signedToken, nil
}

// Validate parses and validates a session token, returning the claims in
// the shape the auth middleware expects.
func (g *Gate) Validate(tokenString string) (*middleware.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired session token")
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthorized("invalid session token claims")
	}

	return &middleware.Claims{
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// Package identity verifies the opaque caller-identity tokens issued by the
// external identity service. The engine trusts the identity service for
// authentication, MFA and step-up; this package only checks that a token was
// signed with the shared secret and extracts the caller reference.
package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the caller identity the engine trusts.
type Claims struct {
	CallerID string
}

// Verifier validates caller-identity tokens.
type Verifier struct {
	SecretKey string        // Shared secret the identity service signs with
	Exp       time.Duration // Token lifetime used by Generate
}

// New creates a new Verifier.
func New(secretKey string, expiration time.Duration) *Verifier {
	return &Verifier{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token for a caller id. Used by sandbox tooling
// and tests; production tokens come from the identity service.
func (v *Verifier) Generate(ctx context.Context, callerID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": callerID,
		"exp": time.Now().Add(v.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(v.SecretKey))
}

// GetClaims parses the token string and returns the caller identity if the
// signature checks out.
func (v *Verifier) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(v.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("caller id not found in token")
	}
	return &Claims{CallerID: sub}, nil
}

// Validate checks a token without extracting anything.
func (v *Verifier) Validate(ctx context.Context, tokenString string) error {
	_, err := v.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (v *Verifier) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

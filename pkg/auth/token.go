// Package auth handles the opaque bearer token the client stores locally
// and the typed claims embedded in it.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flowpms/flowpms-go/pkg/config"
	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/kv"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// Claims is the typed JWT payload issued by the backend.
type Claims struct {
	UserID      uuid.UUID      `json:"user_id"`
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name,omitempty"`
	Role        enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenStore keeps the bearer token under the fixed kv key. A missing token
// means requests go out unauthenticated.
type TokenStore struct {
	store kv.Store
}

// NewTokenStore wraps the provided kv backend.
func NewTokenStore(store kv.Store) *TokenStore {
	return &TokenStore{store: store}
}

// Token implements apiclient.TokenProvider. Read failures degrade to an
// unauthenticated request rather than blocking the call.
func (t *TokenStore) Token(ctx context.Context) string {
	if t == nil || t.store == nil {
		return ""
	}
	value, found, err := t.store.Get(ctx, kv.KeyAuthToken)
	if err != nil || !found {
		return ""
	}
	return value
}

// Save persists the bearer token.
func (t *TokenStore) Save(ctx context.Context, token string) error {
	return t.store.Set(ctx, kv.KeyAuthToken, strings.TrimSpace(token))
}

// Clear drops the stored token (logout).
func (t *TokenStore) Clear(ctx context.Context) error {
	return t.store.Delete(ctx, kv.KeyAuthToken)
}

// DecodeClaims extracts the claims from a token without verifying the
// signature. The client treats the token as opaque auth material; claims are
// only used for local display, the backend re-verifies every request.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decoding token claims: %w", err)
	}
	return claims, nil
}

// MintToken signs a JWT for the mock API server.
func MintToken(cfg config.MockConfig, now time.Time, userID uuid.UUID, username string, role enums.UserRole) (string, error) {
	if cfg.JWTSecret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("invalid user role %q", role)
	}

	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseToken validates a JWT minted by the mock API.
func ParseToken(cfg config.MockConfig, tokenString string) (*Claims, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.JWTIssuer),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

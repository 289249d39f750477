// Package auth issues and checks the service's authentication tokens.
package auth

import (
	"context"
	"ctchen222/user-auth/internal/api/models"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=mocks/token_manager.go -package=mocks ctchen222/user-auth/internal/auth TokenManager

var tracer = otel.Tracer("auth")

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token is not registered")
)

// Claims are the JWT claims carried by an authentication token.
// Subject holds the user ID and ID the token id used by the TokenStore.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the numeric user ID from the subject claim.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenManager extracts, validates and mints authentication tokens.
type TokenManager interface {
	Extract(authHeader string) string
	Validate(ctx context.Context, token string) (*Claims, error)
	Generate(ctx context.Context, user *models.User) (string, error)
}

// JWTManager is a TokenManager backed by HS256 JWTs. When a TokenStore is set,
// minted tokens are registered in it and only registered tokens validate.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	store  TokenStore
	now    func() time.Time
}

// NewJWTManager creates a JWTManager. store may be nil.
func NewJWTManager(secret string, ttl time.Duration, store TokenStore) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// Extract returns the token from an Authorization header value, accepting both
// "Bearer <token>" and a bare token. A header holding only the scheme carries
// no token and yields "".
func (m *JWTManager) Extract(authHeader string) string {
	fields := strings.Fields(authHeader)
	if len(fields) > 0 && strings.EqualFold(fields[0], "bearer") {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// Generate mints a token for user and registers it in the store.
func (m *JWTManager) Generate(ctx context.Context, user *models.User) (string, error) {
	ctx, span := tracer.Start(ctx, "JWTManager.Generate", trace.WithAttributes(
		attribute.Int64("user.id", user.ID),
	))
	defer span.End()

	now := m.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to sign token")
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if m.store != nil {
		if err := m.store.Save(ctx, claims.ID, user.ID, m.ttl); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to register token")
			return "", fmt.Errorf("failed to register token: %w", err)
		}
	}

	return tokenString, nil
}

// Validate checks the signature, expiry and registration of token.
// Malformed, expired or unregistered tokens yield an error wrapping ErrInvalidToken;
// other errors come from the store.
func (m *JWTManager) Validate(ctx context.Context, token string) (*Claims, error) {
	ctx, span := tracer.Start(ctx, "JWTManager.Validate")
	defer span.End()

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	if m.store != nil {
		ok, err := m.store.Exists(ctx, claims.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to look up token")
			return nil, fmt.Errorf("failed to look up token: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenRevoked)
		}
	}

	return claims, nil
}

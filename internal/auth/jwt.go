package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

var (
	ErrEmptyToken    = errors.New("token is empty")
	ErrRoleNotPermit = errors.New("role not permitted")
)

// JWTManager validates HS256 access tokens issued by the account service.
// It can also mint tokens with the same secret, which the server uses only
// for local tooling and tests.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	roleOK    func(string) bool
}

// Option configures a JWTManager.
type Option func(*JWTManager)

// WithRoleFilter rejects tokens whose role claim does not satisfy allowed.
func WithRoleFilter(allowed func(role string) bool) Option {
	return func(m *JWTManager) { m.roleOK = allowed }
}

// NewJWTManager creates a JWT manager. secret must be at least 32 characters.
func NewJWTManager(secret, issuer string, accessTTL time.Duration, opts ...Option) *JWTManager {
	m := &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		roleOK:    func(string) bool { return true },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// GenerateAccessToken signs a token with userID as subject and role as a custom claim.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: string(role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses tokenString and returns the caller identity.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	if !m.roleOK(claims.Role) {
		return Identity{}, fmt.Errorf("%w: %q", ErrRoleNotPermit, claims.Role)
	}

	return Identity{UserID: userID, Role: domain.UserRole(claims.Role)}, nil
}

// ValidateToken adapts ValidateAccessToken to the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (Identity, error) {
	return m.ValidateAccessToken(token)
}

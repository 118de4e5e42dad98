package http

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry, or
// claim checks. The transport maps it to 401 without leaking which check
// failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID kernel.UUID
	Role   user.Role
}

// TokenService issues and verifies HS256 JWTs carrying the user id and role.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for the user.
func (s *TokenService) Issue(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":  u.ID().String(),
		"role": u.Role().String(),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token and extracts the caller identity.
func (s *TokenService) Parse(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	userID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	roleName, ok := claims["role"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	role, err := user.RoleFromString(roleName)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: userID, Role: role}, nil
}

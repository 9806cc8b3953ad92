package jwthelper

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

const issuer = "vaccination-system"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role domain.Role `json:"role"`
	Name string      `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session for ttl. The subject carries the account ID.
func GenerateToken(key []byte, session domain.Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: session.Role,
		Name: session.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(session.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

// ParseToken verifies tokenString and returns the session it was issued for.
func ParseToken(key []byte, tokenString string) (domain.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.Session{}, ErrInvalidToken
	}

	role, err := domain.ParseRole(string(claims.Role))
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return domain.Session{}, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}

	return domain.Session{
		Role: role,
		ID:   uint(id),
		Name: claims.Name,
	}, nil
}

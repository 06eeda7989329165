package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dispatch/internal/entities"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет HS256-токены сессии. Роль кладётся в
// клеймы только для маршрутизации, сервисы перепроверяют её по базе.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Issue(profileID string, role entities.RoleType) (string, error) {
	now := time.Now().UTC()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) Parse(tokenString string) (entities.Actor, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || tokenClaims.Subject == "" {
		return entities.Actor{}, ErrInvalidToken
	}

	return entities.Actor{
		ProfileID: tokenClaims.Subject,
		Role:      entities.RoleType(tokenClaims.Role),
	}, nil
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessClaims — полезная нагрузка access-токена.
type accessClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// generateAccessToken выпускает подписанный HS256 access-токен для userID.
// Политика срока действия — фиксированный TTL из конфигурации.
func (s *Service) generateAccessToken(userID uuid.UUID, now time.Time) (string, error) {
	const op = "service.token.generateAccessToken"

	claims := accessClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// errInvalidToken — токен некорректен по формату или подписи.
var errInvalidToken = errors.New("invalid token")

// parseAccessToken валидирует токен и возвращает идентификатор пользователя.
func (s *Service) parseAccessToken(tokenStr string) (uuid.UUID, error) {
	const op = "service.token.parseAccessToken"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, errInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
	)

	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, errInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%s: %w", op, errInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, errInvalidToken)
	}

	return uid, nil
}

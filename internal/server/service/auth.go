package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-mobile-auth/internal/server/models"
	"github.com/pribylovaa/go-mobile-auth/internal/server/storage"
)

// RegisterUser регистрирует нового пользователя и выпускает токен.
//
// Порядок проверок фиксирован, первая неудача завершает обработку:
//  1. все три поля непустые (клиентскому триммингу не доверяем);
//  2. длина пароля >= настроенного минимума;
//  3. email свободен — лёгкая предварительная проверка по точному совпадению;
//  4. создание записи: уникальное ограничение БД остаётся
//     авторитетным сигналом конфликта при гонке двух регистраций.
//
// Токен выпускается тогда и только тогда, когда регистрация прошла.
func (s *Service) RegisterUser(ctx context.Context, name, email, password string) (string, *models.User, error) {
	const op = "service.auth.RegisterUser"

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return "", nil, fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	if len([]rune(password)) < s.cfg.MinPasswordLen {
		return "", nil, fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	_, err := s.storage.UserByEmail(ctx, email)
	if err == nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.CreateUser(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return "", nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.generateAccessToken(user.ID, time.Now().UTC())
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return token, user, nil
}

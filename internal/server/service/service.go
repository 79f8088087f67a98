// service содержит бизнес-логику auth-сервера: регистрацию пользователей
// и выпуск access-токена через хранилище из пакета storage.
//
// Основные аспекты:
//   - Экземпляр Service не хранит состояние запроса и безопасен для
//     конкурентного использования при потокобезопасном storage.Storage.
//   - Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем
//     на статус и конверт ответа (см. httpapi/apierrors).
package service

import (
	"errors"

	"github.com/pribylovaa/go-mobile-auth/internal/server/config"
	"github.com/pribylovaa/go-mobile-auth/internal/server/storage"
)

var (
	// ErrMissingFields — не заполнено одно из обязательных полей регистрации.
	// Транспорт: HTTP 400, "Name, email and password are required".
	ErrMissingFields = errors.New("missing required fields")

	// ErrWeakPassword — пароль короче настроенного минимума.
	// Проверка дублируется на сервере независимо от клиентской валидации.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too short")

	// ErrEmailTaken — email уже занят другим пользователем.
	// Транспорт: HTTP 400, "User already exists with this email".
	ErrEmailTaken = errors.New("email already taken")
)

// Service описывает бизнес-логику auth-сервера.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// storage задаёт контракт хранилища пользователей.
//
// Хэширование учётного секрета — обязанность реализации хранилища:
// сервисный слой передаёт пароль открытым текстом и никогда его не персистит.
// Гарантия уникальности email обеспечивается уникальным ограничением БД —
// ErrAlreadyExists от CreateUser является авторитетным сигналом конфликта,
// предварительная проверка UserByEmail лишь fast-path.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-mobile-auth/internal/server/models"
)

var (
	// ErrNotFound — пользователь не найден.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности email.
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// CreateUser создаёт пользователя, хэшируя пароль перед записью.
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	// UserByEmail находит пользователя по точному совпадению email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	Close()
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись, созданная регистрацией.
// Email хранится и сравнивается case-sensitive, как введён.
// PasswordHash никогда не попадает в ответы API.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

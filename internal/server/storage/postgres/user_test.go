package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-mobile-auth/internal/server/storage"
)

// Файл интеграционных тестов для пакета postgres (репозиторий user.go):
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет встроенные goose-миграции через RunMigrations;
// - проверяет happy-path (создание и поиск по email), bcrypt-хэш в записи,
//   нарушение уникальности email (case-sensitive схема) и storage.ErrNotFound.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/server/storage/postgres -v -race -count=1

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	require.NoError(t, RunMigrations(ctx, dsn))

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// TestIntegration_CreateUser_And_UserByEmail_OK — happy-path:
// создание пользователя и поиск по email; пароль в БД лежит bcrypt-хэшем.
func TestIntegration_CreateUser_And_UserByEmail_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u, err := st.CreateUser(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "Ada", u.Name)
	require.Equal(t, "ada@example.com", u.Email)

	got, err := st.UserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Second)

	// Пароль не хранится открытым текстом.
	require.NotEqual(t, "secret1", got.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret1")))
}

// TestIntegration_UserByEmail_CaseSensitive — email сравнивается точно,
// другой регистр не находит запись.
func TestIntegration_UserByEmail_CaseSensitive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.CreateUser(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, err = st.UserByEmail(context.Background(), "ADA@EXAMPLE.COM")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_CreateUser_DuplicateEmail_Violation — конфликт уникальности по email,
// ожидаем storage.ErrAlreadyExists от уникального ограничения БД.
func TestIntegration_CreateUser_DuplicateEmail_Violation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.CreateUser(context.Background(), "Ada", "dup@example.com", "secret1")
	require.NoError(t, err)

	_, err = st.CreateUser(context.Background(), "Eva", "dup@example.com", "secret2")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_UserByEmail_NotFound — поиск несуществующего email
// возвращает storage.ErrNotFound.
func TestIntegration_UserByEmail_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByEmail(context.Background(), "missing@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

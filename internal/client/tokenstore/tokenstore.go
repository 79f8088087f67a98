// tokenstore — долговременное клиентское хранилище bearer-токена.
//
// Один слот под фиксированным ключом, last-write-wins: новый токен
// перезаписывает прежний, слияния нет. Ошибка записи возвращается
// явно — решать, предупреждать ли пользователя, должен вызывающий.
package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Фиксированный ключ слота токена.
const tokenKey = "authtoken"

const schema = `
	CREATE TABLE IF NOT EXISTS metadata (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
`

// Store — sqlite-хранилище единственного токена.
type Store struct {
	db *sql.DB
}

// Open открывает (или создаёт) базу по пути path и готовит схему.
func Open(ctx context.Context, path string) (*Store, error) {
	const op = "tokenstore.Open"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{db: db}, nil
}

// Save записывает токен, перезаписывая прежнее значение.
func (s *Store) Save(ctx context.Context, token string) error {
	const op = "tokenstore.Save"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Get возвращает сохранённый токен или пустую строку, если его нет.
func (s *Store) Get(ctx context.Context) (string, error) {
	const op = "tokenstore.Get"

	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, tokenKey,
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

// Close закрывает базу.
func (s *Store) Close() error {
	return s.db.Close()
}

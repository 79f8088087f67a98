// migrations содержит встроенные SQL-миграции схемы auth-сервера.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

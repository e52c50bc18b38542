// Package sqlite registra el driver SQLite (mattn/go-sqlite3, requiere cgo).
// Pensado para desarrollo local y tests: "file::memory:?cache=shared".
package sqlite

import (
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/store"
)

func init() {
	store.RegisterAdapter(&sqliteAdapter{})
}

type sqliteAdapter struct{}

func (a *sqliteAdapter) Name() string { return "sqlite" }

func (a *sqliteAdapter) Dialector(cfg store.AdapterConfig) (gorm.Dialector, error) {
	return gormsqlite.Open(cfg.DSN), nil
}

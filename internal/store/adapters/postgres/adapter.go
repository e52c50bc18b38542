// Package postgres registra el driver PostgreSQL sobre pgx.
//
// El DSN se parsea con pgx y la conexión se abre con pgx/stdlib, así gorm
// comparte el mismo driver que el resto del ecosistema pgx.
package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/store"
)

func init() {
	store.RegisterAdapter(&pgAdapter{})
}

type pgAdapter struct{}

func (a *pgAdapter) Name() string { return "postgres" }

func (a *pgAdapter) Dialector(cfg store.AdapterConfig) (gorm.Dialector, error) {
	pcfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.ConnectTimeout > 0 {
		pcfg.ConnectTimeout = cfg.ConnectTimeout
	}
	return gormpg.New(gormpg.Config{Conn: stdlib.OpenDB(*pcfg)}), nil
}

// Package mysql registra el driver MySQL.
//
// DSN: user:password@tcp(host:port)/database?parseTime=true
// parseTime se fuerza para que los timestamps lleguen como time.Time.
package mysql

import (
	"fmt"

	drv "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/store"
)

func init() {
	store.RegisterAdapter(&mysqlAdapter{})
}

type mysqlAdapter struct{}

func (a *mysqlAdapter) Name() string { return "mysql" }

func (a *mysqlAdapter) Dialector(cfg store.AdapterConfig) (gorm.Dialector, error) {
	dsn, err := NormalizeDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}
	return gormmysql.New(gormmysql.Config{DSN: dsn}), nil
}

// NormalizeDSN valida el DSN y activa parseTime.
func NormalizeDSN(dsn string) (string, error) {
	c, err := drv.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	c.ParseTime = true
	return c.FormatDSN(), nil
}

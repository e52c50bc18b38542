package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Valores por defecto del pool: 100 abiertas, 5 idle, 8s de vida.
const (
	DefaultMaxOpenConns    = 100
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 8 * time.Second
	DefaultConnMaxIdleTime = 8 * time.Second
	DefaultConnectTimeout  = 8 * time.Second
)

func configurePool(ctx context.Context, db *gorm.DB, cfg AdapterConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(orInt(cfg.MaxOpenConns, DefaultMaxOpenConns))
	sqlDB.SetMaxIdleConns(orInt(cfg.MaxIdleConns, DefaultMaxIdleConns))
	sqlDB.SetConnMaxLifetime(orDur(cfg.ConnMaxLifetime, DefaultConnMaxLifetime))
	sqlDB.SetConnMaxIdleTime(orDur(cfg.ConnMaxIdleTime, DefaultConnMaxIdleTime))

	pctx, cancel := context.WithTimeout(ctx, orDur(cfg.ConnectTimeout, DefaultConnectTimeout))
	defer cancel()
	if err := sqlDB.PingContext(pctx); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close cierra el *sql.DB subyacente.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func orInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orDur(v, def time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return def
}

// Package store provee el registry de adaptadores de base de datos.
//
// Cada driver (postgres, mysql, sqlite) se registra en init() y devuelve un
// *gorm.DB ya configurado; los repositorios viven en store/gormstore.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Adapter abre una conexión gorm para un driver concreto.
type Adapter interface {
	// Name: "postgres", "mysql", "sqlite".
	Name() string

	// Dialector traduce la config a un gorm.Dialector sin abrir conexiones.
	Dialector(cfg AdapterConfig) (gorm.Dialector, error)
}

// AdapterConfig configuración para conectar a un almacenamiento.
type AdapterConfig struct {
	Name string
	DSN  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// ConnectTimeout acota el ping inicial.
	ConnectTimeout time.Duration

	// GormConfig opcional (logger, naming). nil usa el default.
	GormConfig *gorm.Config
}

// ─── Registry Global ───

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// RegisterAdapter registra un adapter. Llamar en init() de cada driver.
func RegisterAdapter(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := a.Name()
	if _, exists := adapters[name]; exists {
		panic(fmt.Sprintf("adapter: %q already registered", name))
	}
	adapters[name] = a
}

func GetAdapter(name string) (Adapter, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[name]
	return a, ok
}

// ListAdapters retorna los nombres registrados, ordenados.
func ListAdapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(adapters))
	for name := range adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open abre la conexión con el adapter indicado en cfg.Name, aplica el pool
// y verifica conectividad dentro de ConnectTimeout.
func Open(ctx context.Context, cfg AdapterConfig) (*gorm.DB, error) {
	a, ok := GetAdapter(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("adapter: %q not registered (have %v)", cfg.Name, ListAdapters())
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("%s: dsn is required", cfg.Name)
	}
	dial, err := a.Dialector(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Name, err)
	}

	gcfg := cfg.GormConfig
	if gcfg == nil {
		gcfg = &gorm.Config{}
	}
	db, err := gorm.Open(dial, gcfg)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", cfg.Name, err)
	}
	if err := configurePool(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Name, err)
	}
	return db, nil
}

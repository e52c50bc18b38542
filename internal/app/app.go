// Package app arma el contenedor de dependencias a partir de la config.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/cache"
	"github.com/dropDatabas3/rbac-admin/internal/config"
	adminctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/admin"
	authctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/rbac-admin/internal/http/controllers/health"
	mw "github.com/dropDatabas3/rbac-admin/internal/http/middlewares"
	"github.com/dropDatabas3/rbac-admin/internal/http/router"
	adminsvc "github.com/dropDatabas3/rbac-admin/internal/http/services/admin"
	authsvc "github.com/dropDatabas3/rbac-admin/internal/http/services/auth"
	"github.com/dropDatabas3/rbac-admin/internal/jwt"
	"github.com/dropDatabas3/rbac-admin/internal/metrics"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
	"github.com/dropDatabas3/rbac-admin/internal/rate"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
	"github.com/dropDatabas3/rbac-admin/internal/session"
	"github.com/dropDatabas3/rbac-admin/internal/store"
	"github.com/dropDatabas3/rbac-admin/internal/store/gormlog"
	"github.com/dropDatabas3/rbac-admin/internal/store/gormstore"
)

type Container struct {
	Config   *config.Config
	DB       *gorm.DB
	Store    *gormstore.Store
	Issuer   *jwt.Issuer
	Cache    cache.Client // nil si nadie lo necesita
	Sessions session.Store
	Sweeper  *session.Sweeper // nil con backend shared
	Limiter  rate.Limiter
	Metrics  *metrics.Metrics
	Resolver *rbac.Resolver
	Auth     authsvc.Service
	Admin    adminsvc.Services
	Handler  http.Handler

	closers []func() error
}

// OpenStore abre la base configurada con el pool y el logger de gorm.
func OpenStore(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	level := "warn"
	if cfg.Storage.LogSQL {
		level = "debug"
	}
	return store.Open(ctx, store.AdapterConfig{
		Name:            cfg.Storage.Driver,
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Storage.ConnMaxIdleTime,
		ConnectTimeout:  cfg.Storage.ConnectTimeout,
		GormConfig:      &gorm.Config{Logger: gormlog.New(level, 0)},
	})
}

// PasswordPolicy arma la política a partir de la config.
func PasswordPolicy(cfg *config.Config) (password.Policy, error) {
	p := password.DefaultPolicy
	if cfg.Security.PasswordMinLength > 0 {
		p.MinLength = cfg.Security.PasswordMinLength
	}
	if path := cfg.Security.PasswordBlacklistPath; path != "" {
		bl, err := password.LoadBlacklist(path)
		if err != nil {
			return p, fmt.Errorf("password blacklist: %w", err)
		}
		p.Blacklist = bl
	}
	return p, nil
}

// Build valida la config y conecta todo. Ante error libera lo ya abierto.
func Build(ctx context.Context, cfg *config.Config) (c *Container, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log := logger.From(ctx).With(logger.Component("app"))

	c = &Container{Config: cfg}
	defer func() {
		if err != nil {
			_ = c.Close()
			c = nil
		}
	}()

	// 1. Store
	db, err := OpenStore(ctx, cfg)
	if err != nil {
		return c, err
	}
	c.DB = db
	c.closers = append(c.closers, func() error { return store.Close(db) })
	c.Store = gormstore.New(db)
	if cfg.Storage.Driver == "sqlite" {
		if err := c.Store.AutoMigrate(ctx); err != nil {
			return c, fmt.Errorf("sqlite automigrate: %w", err)
		}
	}

	// 2. Issuer
	c.Issuer, err = jwt.NewIssuer(cfg.JWT.Secret, jwt.WithTTL(cfg.JWT.AccessTTL), jwt.WithIssuer(cfg.JWT.Issuer))
	if err != nil {
		return c, err
	}

	// 3. Metrics: registry propio por contenedor, expuesto en /metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	c.Metrics, err = metrics.New(reg)
	if err != nil {
		return c, err
	}

	// 4. Cache compartida: sesiones shared o limiter sobre redis
	if cfg.Session.Backend == "shared" || (cfg.Rate.Enabled && cfg.Cache.Kind == "redis") {
		c.Cache, err = cache.New(ctx, cache.Config{
			Driver:   cfg.Cache.Kind,
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return c, fmt.Errorf("cache: %w", err)
		}
		c.closers = append(c.closers, c.Cache.Close)
	}

	// 5. Sesiones
	switch cfg.Session.Backend {
	case "shared":
		c.Sessions = session.NewShared(c.Cache)
	default:
		mem := session.NewMemory()
		c.Sessions = mem
		c.Sweeper, err = session.NewSweeper(mem, cfg.Session.SweepCron)
		if err != nil {
			return c, fmt.Errorf("session sweeper: %w", err)
		}
		c.Sweeper.OnSweep = c.Metrics.SetSessions
	}

	// 6. Rate limit de /auth/signin
	if cfg.Rate.Enabled {
		if r, ok := c.Cache.(*cache.Redis); ok {
			c.Limiter = rate.NewRedisLimiter(r.Raw(), cfg.Cache.Redis.Prefix+":rate:", cfg.Rate.Max, cfg.Rate.Window)
		} else {
			c.Limiter = rate.NewMemoryLimiter(cfg.Rate.Max, cfg.Rate.Window)
		}
	}

	proxies, err := mw.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return c, fmt.Errorf("server.trusted_proxies: %w", err)
	}

	// 7. Services
	policy, err := PasswordPolicy(cfg)
	if err != nil {
		return c, err
	}
	c.Resolver = rbac.NewResolver(c.Store.RBAC(), c.Store.Menus())
	c.Auth = authsvc.NewService(authsvc.Deps{
		Users:    c.Store.Users(),
		Issuer:   c.Issuer,
		Sessions: c.Sessions,
		Resolver: c.Resolver,
		Metrics:  c.Metrics,
	})
	c.Admin = adminsvc.NewServices(adminsvc.Deps{
		Users:       c.Store.Users(),
		Roles:       c.Store.Roles(),
		RBAC:        c.Store.RBAC(),
		Menus:       c.Store.Menus(),
		Departments: c.Store.Departments(),
		Resolver:    c.Resolver,
		Policy:      policy,
	})

	// 8. HTTP
	c.Handler = router.New(router.Deps{
		Issuer:      c.Issuer,
		Auth:        authctrl.NewController(c.Auth),
		Admin:       adminctrl.NewControllers(c.Admin),
		Health:      healthctrl.NewController(c.Store),
		Metrics:     c.Metrics,
		RateLimiter: c.Limiter,
		RateKey:     proxies.RateKey(),
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
	})

	log.Info("container ready",
		logger.String("storage", cfg.Storage.Driver),
		logger.String("session_backend", cfg.Session.Backend),
		logger.Bool("rate_limit", cfg.Rate.Enabled),
	)
	return c, nil
}

// Start arranca los jobs de fondo.
func (c *Container) Start() {
	if c.Sweeper != nil {
		c.Sweeper.Start()
	}
}

// Close detiene el sweeper y libera recursos en orden inverso.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Sweeper != nil {
		c.Sweeper.Stop(context.Background())
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr               string        `yaml:"addr"`
		ReadTimeout        time.Duration `yaml:"read_timeout"`
		WriteTimeout       time.Duration `yaml:"write_timeout"`
		ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
		CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
		// CIDRs o IPs cuyo X-Forwarded-For se respeta.
		TrustedProxies     []string      `yaml:"trusted_proxies"`
	} `yaml:"server"`

	Storage struct {
		Driver          string        `yaml:"driver"` // postgres | mysql | sqlite
		DSN             string        `yaml:"dsn"`
		MaxOpenConns    int           `yaml:"max_open_conns"`
		MaxIdleConns    int           `yaml:"max_idle_conns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
		ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
		ConnectTimeout  time.Duration `yaml:"connect_timeout"`
		LogSQL          bool          `yaml:"log_sql"`
	} `yaml:"storage"`

	JWT struct {
		Secret    string        `yaml:"secret"`
		Issuer    string        `yaml:"issuer"`
		AccessTTL time.Duration `yaml:"access_ttl"`
	} `yaml:"jwt"`

	Session struct {
		Backend   string `yaml:"backend"` // memory | shared
		SweepCron string `yaml:"sweep_cron"`
	} `yaml:"session"`

	Cache struct {
		Kind  string `yaml:"kind"` // memory | redis
		Redis struct {
			Addr     string `yaml:"addr"`
			DB       int    `yaml:"db"`
			Password string `yaml:"password"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	Rate struct {
		Enabled bool          `yaml:"enabled"`
		Max     int           `yaml:"max"`
		Window  time.Duration `yaml:"window"`
	} `yaml:"rate"`

	Logging struct {
		Env   string `yaml:"env"` // dev | prod
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`

	Security struct {
		PasswordMinLength     int    `yaml:"password_min_length"`
		PasswordBlacklistPath string `yaml:"password_blacklist_path"`
	} `yaml:"security"`

	OAuth2 struct {
		TokenEndpoint string `yaml:"token_endpoint"`
		ClientID      string `yaml:"client_id"`
		ClientSecret  string `yaml:"client_secret"`
	} `yaml:"oauth2"`
}

// Load lee el YAML (si path no está vacío), completa defaults y aplica
// las variables de entorno. No valida: eso queda para Validate.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	c.applyEnvOverrides()
	c.applyDefaults()

	// blacklist relativa se resuelve contra el directorio del YAML
	if p := strings.TrimSpace(c.Security.PasswordBlacklistPath); p != "" && path != "" && !filepath.IsAbs(p) {
		c.Security.PasswordBlacklistPath = filepath.Clean(filepath.Join(filepath.Dir(path), p))
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = "postgres"
	}
	if c.Storage.MaxOpenConns == 0 {
		c.Storage.MaxOpenConns = 100
	}
	if c.Storage.MaxIdleConns == 0 {
		c.Storage.MaxIdleConns = 5
	}
	if c.Storage.ConnMaxLifetime == 0 {
		c.Storage.ConnMaxLifetime = 8 * time.Second
	}
	if c.Storage.ConnMaxIdleTime == 0 {
		c.Storage.ConnMaxIdleTime = 8 * time.Second
	}
	if c.Storage.ConnectTimeout == 0 {
		c.Storage.ConnectTimeout = 8 * time.Second
	}

	if c.JWT.AccessTTL == 0 {
		c.JWT.AccessTTL = 5 * time.Minute
	}

	if c.Session.Backend == "" {
		c.Session.Backend = "memory"
	}
	if c.Session.SweepCron == "" {
		c.Session.SweepCron = "@every 1m"
	}

	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "rbac"
	}

	if c.Rate.Max == 0 {
		c.Rate.Max = 10
	}
	if c.Rate.Window == 0 {
		c.Rate.Window = time.Minute
	}

	if c.Security.PasswordMinLength == 0 {
		c.Security.PasswordMinLength = 6
	}

	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}
func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}
func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}
func getEnvDur(key string) (time.Duration, bool) {
	if s, ok := getEnvStr(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil {
			return d, true
		}
	}
	return 0, false
}
func getEnvCSV(key string) ([]string, bool) {
	if s, ok := getEnvStr(key); ok {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}

// applyEnvOverrides: pisa config.yaml con variables de entorno.
// SECRET_KEY, DATABASE_URL, HOST y PORT son los nombres históricos.
func (c *Config) applyEnvOverrides() {
	// SERVER
	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	host, hok := getEnvStr("HOST")
	port, pok := getEnvStr("PORT")
	if hok || pok {
		h, p, err := net.SplitHostPort(c.Server.Addr)
		if err != nil {
			h, p = "", "8080"
		}
		if hok {
			h = host
		}
		if pok {
			p = port
		}
		c.Server.Addr = net.JoinHostPort(h, p)
	}
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}
	if v, ok := getEnvCSV("SERVER_TRUSTED_PROXIES"); ok {
		c.Server.TrustedProxies = v
	}

	// STORAGE
	if v, ok := getEnvStr("STORAGE_DRIVER"); ok {
		c.Storage.Driver = strings.ToLower(v)
	}
	if v, ok := getEnvStr("DATABASE_URL"); ok {
		c.Storage.DSN = v
	}
	if v, ok := getEnvInt("STORAGE_MAX_OPEN_CONNS"); ok {
		c.Storage.MaxOpenConns = v
	}
	if v, ok := getEnvInt("STORAGE_MAX_IDLE_CONNS"); ok {
		c.Storage.MaxIdleConns = v
	}
	if v, ok := getEnvDur("STORAGE_CONNECT_TIMEOUT"); ok {
		c.Storage.ConnectTimeout = v
	}

	// JWT
	if v, ok := getEnvStr("SECRET_KEY"); ok {
		c.JWT.Secret = v
	}
	if v, ok := getEnvStr("JWT_ISSUER"); ok {
		c.JWT.Issuer = v
	}
	if v, ok := getEnvDur("JWT_ACCESS_TTL"); ok {
		c.JWT.AccessTTL = v
	}

	// SESSION / CACHE
	if v, ok := getEnvStr("SESSION_BACKEND"); ok {
		c.Session.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvStr("SESSION_SWEEP_CRON"); ok {
		c.Session.SweepCron = v
	}
	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = strings.ToLower(v)
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvStr("REDIS_PASSWORD"); ok {
		c.Cache.Redis.Password = v
	}
	if v, ok := getEnvStr("REDIS_PREFIX"); ok {
		c.Cache.Redis.Prefix = v
	}

	// RATE
	if v, ok := getEnvBool("RATE_ENABLED"); ok {
		c.Rate.Enabled = v
	}
	if v, ok := getEnvInt("RATE_MAX"); ok {
		c.Rate.Max = v
	}
	if v, ok := getEnvDur("RATE_WINDOW"); ok {
		c.Rate.Window = v
	}

	// SECURITY
	if v, ok := getEnvInt("PASSWORD_MIN_LENGTH"); ok {
		c.Security.PasswordMinLength = v
	}
	if v, ok := getEnvStr("PASSWORD_BLACKLIST_PATH"); ok {
		c.Security.PasswordBlacklistPath = v
	}

	// LOGGING
	if v, ok := getEnvStr("LOG_ENV"); ok {
		c.Logging.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_FILE"); ok {
		c.Logging.File = v
	}

	// OAUTH2
	if v, ok := getEnvStr("OAUTH2_TOKEN_ENDPOINT"); ok {
		c.OAuth2.TokenEndpoint = v
	}
	if v, ok := getEnvStr("OAUTH2_CLIENT_ID"); ok {
		c.OAuth2.ClientID = v
	}
	if v, ok := getEnvStr("OAUTH2_CLIENT_SECRET"); ok {
		c.OAuth2.ClientSecret = v
	}
}

// Validate revisa lo mínimo para arrancar el servidor. Sin secret o sin
// DSN el proceso no arranca.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.JWT.Secret) == "" {
		errs = append(errs, errors.New("jwt.secret is required (SECRET_KEY)"))
	}
	if strings.TrimSpace(c.Storage.DSN) == "" {
		errs = append(errs, errors.New("storage.dsn is required (DATABASE_URL)"))
	}
	switch c.Storage.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q not supported", c.Storage.Driver))
	}
	switch c.Session.Backend {
	case "memory", "shared":
	default:
		errs = append(errs, fmt.Errorf("session.backend %q not supported", c.Session.Backend))
	}
	switch c.Cache.Kind {
	case "memory":
	case "redis":
		if c.Cache.Redis.Addr == "" {
			errs = append(errs, errors.New("cache.redis.addr is required when cache.kind=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.kind %q not supported", c.Cache.Kind))
	}
	if c.JWT.AccessTTL < 0 {
		errs = append(errs, errors.New("jwt.access_ttl must be positive"))
	}
	if c.Rate.Enabled && (c.Rate.Max <= 0 || c.Rate.Window <= 0) {
		errs = append(errs, errors.New("rate.max and rate.window must be positive"))
	}
	return errors.Join(errs...)
}

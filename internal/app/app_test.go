package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/rbac-admin/internal/bootstrap"
	"github.com/dropDatabas3/rbac-admin/internal/config"
	"github.com/dropDatabas3/rbac-admin/internal/rate"
	"github.com/dropDatabas3/rbac-admin/internal/session"
	_ "github.com/dropDatabas3/rbac-admin/internal/store/adapters/dal"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	for _, k := range []string{"SECRET_KEY", "DATABASE_URL", "STORAGE_DRIVER", "SESSION_BACKEND", "CACHE_KIND", "RATE_ENABLED", "SERVER_TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Storage.Driver = "sqlite"
	cfg.Storage.DSN = "file:" + t.Name() + "?mode=memory&cache=shared"
	cfg.Storage.MaxOpenConns = 1
	cfg.JWT.Secret = "app-test-secret"
	return cfg
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.JWT.Secret = ""
	_, err := Build(context.Background(), cfg)
	assert.ErrorContains(t, err, "jwt.secret")
}

func TestBuildServesSignIn(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Rate.Enabled = true
	cfg.Rate.Max = 2
	cfg.Rate.Window = time.Minute

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.IsType(t, &session.Memory{}, c.Sessions)
	assert.NotNil(t, c.Sweeper)
	assert.IsType(t, &rate.MemoryLimiter{}, c.Limiter)

	_, err = bootstrap.EnsureAdmin(context.Background(), bootstrap.Deps{
		Users: c.Store.Users(), Roles: c.Store.Roles(), Resolver: c.Resolver,
	}, bootstrap.AdminBootstrapConfig{UserName: "admin", Password: "123456"})
	require.NoError(t, err)

	signIn := func() *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"userName": "admin", "password": "123456"})
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", bytes.NewReader(body))
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c.Handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, signIn().Code)
	assert.Equal(t, http.StatusOK, signIn().Code)
	// tercer intento en la ventana: limitado
	assert.Equal(t, http.StatusTooManyRequests, signIn().Code)
}

func TestBuildSignInLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Rate.Enabled = true
	cfg.Rate.Max = 2
	cfg.Rate.Window = time.Minute

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	limited := 0
	for i := 0; i < 20; i++ {
		body, _ := json.Marshal(map[string]string{"userName": "nobody", "password": "123456"})
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", bytes.NewReader(body))
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		c.Handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 18, limited)
}

func TestBuildRejectsBadTrustedProxy(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Server.TrustedProxies = []string{"nope"}
	_, err := Build(context.Background(), cfg)
	assert.ErrorContains(t, err, "trusted_proxies")
}

func TestBuildSharedSessions(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Session.Backend = "shared"

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.IsType(t, &session.Shared{}, c.Sessions)
	assert.Nil(t, c.Sweeper)
	assert.NotNil(t, c.Cache)
	assert.Nil(t, c.Limiter)
}

func TestPasswordPolicy(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Security.PasswordMinLength = 9
	p, err := PasswordPolicy(cfg)
	require.NoError(t, err)
	assert.Equal(t, 9, p.MinLength)

	cfg.Security.PasswordBlacklistPath = "/does/not/exist.txt"
	_, err = PasswordPolicy(cfg)
	assert.Error(t, err)
}

package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/rbac-admin/internal/jwt"
	"github.com/dropDatabas3/rbac-admin/internal/rate"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func envelopeCode(t *testing.T, rec *httptest.ResponseRecorder) float64 {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["code"].(float64)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(okHandler, mk("a"), mk("b"), mk("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestRequireAuth(t *testing.T) {
	iss, err := jwt.NewIssuer("secret")
	require.NoError(t, err)
	tok, _, err := iss.Issue(1, "root")
	require.NoError(t, err)

	var seen *jwt.Claims
	h := RequireAuth(iss, "/auth/signin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// public path passes without header
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// missing header -> 400 envelope
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, 400, envelopeCode(t, rec))

	// malformed header -> 401 envelope
	for _, ah := range []string{"Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/user/1", nil)
		req.Header.Set("Authorization", ah)
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, ah)
		assert.EqualValues(t, 400, envelopeCode(t, rec), ah)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token", ah)
	}

	// invalid token -> 401 envelope
	req := httptest.NewRequest(http.MethodGet, "/user/1", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.EqualValues(t, 400, envelopeCode(t, rec))

	// valid token -> claims in context
	req = httptest.NewRequest(http.MethodGet, "/user/1", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "root", seen.UserName)
}

func TestWithRequestID(t *testing.T) {
	var got string
	h := WithRequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Len(t, got, 36)
	assert.Equal(t, got, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc", got)
}

func TestWithRecover(t *testing.T) {
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }), WithRecover())
	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() { h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil)) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type stubLimiter struct {
	res rate.Result
	err error
}

func (s stubLimiter) Allow(context.Context, string) (rate.Result, error) { return s.res, s.err }

func TestWithRateLimit(t *testing.T) {
	blocked := WithRateLimit(stubLimiter{res: rate.Result{Allowed: false, RetryAfter: 30 * time.Second}}, nil)(okHandler)
	rec := httptest.NewRecorder()
	blocked.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/signin", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	// limiter failure lets the request through
	failing := WithRateLimit(stubLimiter{err: errors.New("redis down")}, nil)(okHandler)
	rec = httptest.NewRecorder()
	failing.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/signin", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// nil limiter is a no-op
	rec = httptest.NewRecorder()
	WithRateLimit(nil, nil)(okHandler).ServeHTTP(rec, httptest.NewRequest("POST", "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithCORS(t *testing.T) {
	h := WithCORS([]string{"https://admin.example.com/"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/user/list", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestClientIP_IgnoresForwardedWithoutTrustedProxy(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	assert.Equal(t, "10.0.0.1", clientIP(req))
}

func TestTrustedProxies_ClientIP(t *testing.T) {
	tp, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.7 ", ""})
	require.NoError(t, err)

	cases := []struct {
		name   string
		remote string
		xff    string
		want   string
	}{
		{"untrusted remote ignores header", "203.0.113.5:1000", "1.1.1.1", "203.0.113.5"},
		{"trusted remote without header", "10.1.2.3:1000", "", "10.1.2.3"},
		{"trusted remote takes last hop", "10.1.2.3:1000", "1.1.1.1", "1.1.1.1"},
		{"spoofed left entries are skipped", "10.1.2.3:1000", "6.6.6.6, 1.1.1.1", "1.1.1.1"},
		{"trusted hops are walked", "192.168.1.7:1000", "1.1.1.1, 10.9.9.9", "1.1.1.1"},
		{"garbage stops the walk", "10.1.2.3:1000", "1.1.1.1, nope", "10.1.2.3"},
		{"ipv6 remote", "[2001:db8::1]:443", "1.1.1.1", "2001:db8::1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remote
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			assert.Equal(t, tc.want, tp.ClientIP(req))
		})
	}

	_, err = ParseTrustedProxies([]string{"not-an-ip"})
	assert.Error(t, err)
}

func TestWithRateLimit_RotatingForwardedForStaysLimited(t *testing.T) {
	h := WithRateLimit(rate.NewMemoryLimiter(2, time.Minute), TrustedProxies(nil).RateKey())(okHandler)

	allowed := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
		req.RemoteAddr = "198.51.100.9:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			allowed++
		}
	}
	assert.Equal(t, 2, allowed)
}

package middlewares

import (
	"fmt"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	httperrors "github.com/dropDatabas3/rbac-admin/internal/http/errors"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"
	"github.com/dropDatabas3/rbac-admin/internal/rate"
)

// TrustedProxies son las redes cuyo X-Forwarded-For se acepta. Vacío
// significa que sólo cuenta RemoteAddr.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies acepta CIDRs ("10.0.0.0/8") o IPs sueltas.
func ParseTrustedProxies(list []string) (TrustedProxies, error) {
	out := make(TrustedProxies, 0, len(list))
	for _, raw := range list {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if p, err := netip.ParsePrefix(raw); err == nil {
			out = append(out, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		a = a.Unmap()
		out = append(out, netip.PrefixFrom(a, a.BitLen()))
	}
	return out, nil
}

func (tp TrustedProxies) trusts(a netip.Addr) bool {
	for _, p := range tp {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

// ClientIP devuelve RemoteAddr salvo que venga de un proxy confiable; en ese
// caso recorre X-Forwarded-For de derecha a izquierda y se queda con el
// primer salto no confiable.
func (tp TrustedProxies) ClientIP(r *http.Request) string {
	remote, ok := remoteAddr(r)
	if !ok {
		return r.RemoteAddr
	}
	if !tp.trusts(remote) {
		return remote.String()
	}
	ip := remote
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		a, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		ip = a.Unmap()
		if !tp.trusts(ip) {
			break
		}
	}
	return ip.String()
}

// RateKey separa límites por IP de cliente y endpoint sin leer el body.
func (tp TrustedProxies) RateKey() RateKeyFunc {
	return func(r *http.Request) string {
		return tp.ClientIP(r) + "|" + r.URL.Path
	}
}

func remoteAddr(r *http.Request) (netip.Addr, bool) {
	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().Unmap(), true
	}
	if a, err := netip.ParseAddr(r.RemoteAddr); err == nil {
		return a.Unmap(), true
	}
	return netip.Addr{}, false
}

// clientIP sin proxies confiables: siempre RemoteAddr.
func clientIP(r *http.Request) string {
	return TrustedProxies(nil).ClientIP(r)
}

// RateKeyFunc define cómo generar la clave de rate limiting.
type RateKeyFunc func(r *http.Request) string

// IPPathRateKey usa RemoteAddr e ignora X-Forwarded-For.
func IPPathRateKey(r *http.Request) string {
	return clientIP(r) + "|" + r.URL.Path
}

// WithRateLimit aplica limiter a cada request. Sin limiter es un no-op.
// Si el limiter falla se deja pasar el request.
func WithRateLimit(limiter rate.Limiter, key RateKeyFunc) Middleware {
	if key == nil {
		key = IPPathRateKey
	}
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Allow(r.Context(), key(r))
			if err != nil {
				logger.From(r.Context()).Warn("rate limiter error", logger.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			if res.WindowTTL > 0 {
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(res.WindowTTL).Unix(), 10))
			}
			if !res.Allowed {
				if res.RetryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())))
				}
				httperrors.WriteError(w, httperrors.ErrRateLimitExceeded)
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
			next.ServeHTTP(w, r)
		})
	}
}

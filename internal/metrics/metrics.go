// Package metrics holds the Prometheus collectors of the service.
//
// Collectors hang off a *Metrics value built against a caller supplied
// registry so tests can use a fresh prometheus.NewRegistry().
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	SignIn       *prometheus.CounterVec
	SignOut      *prometheus.CounterVec
	Sessions     prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers every collector on reg. A nil reg uses the default registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	var (
		r prometheus.Registerer = prometheus.DefaultRegisterer
		g prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		r, g = reg, reg
	}

	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SignIn: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_signin_total",
			Help: "Sign-in attempts by result",
		}, []string{"result"}),
		SignOut: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_signout_total",
			Help: "Sign-out attempts by result",
		}, []string{"result"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "session_entries",
			Help: "Live entries in the session cache",
		}),
		gatherer: g,
	}

	for _, c := range []prometheus.Collector{m.HTTPRequests, m.HTTPDuration, m.SignIn, m.SignOut, m.Sessions} {
		if err := register(r, c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func register(r prometheus.Registerer, c prometheus.Collector) error {
	if err := r.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}

// Handler serves /metrics from the registry New was given.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Sign-in results.
const (
	ResultOK             = "ok"
	ResultCached         = "cached"
	ResultBadCredentials = "bad_credentials"
	ResultNotFound       = "not_found"
	ResultError          = "error"
)

// ObserveSignIn tolerates a nil receiver so services work without metrics.
func (m *Metrics) ObserveSignIn(result string) {
	if m == nil {
		return
	}
	m.SignIn.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSignOut(result string) {
	if m == nil {
		return
	}
	m.SignOut.WithLabelValues(result).Inc()
}

func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.Sessions.Set(float64(n))
}

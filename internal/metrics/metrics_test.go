package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FreshRegistry(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveSignIn(ResultOK)
	m.ObserveSignIn(ResultOK)
	m.ObserveSignIn(ResultBadCredentials)
	m.SetSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SignIn.WithLabelValues(ResultOK)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Sessions))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "auth_signin_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSignIn(ResultOK)
		m.ObserveSignOut(ResultOK)
		m.SetSessions(1)
	})
}

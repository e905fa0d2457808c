package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRegistration(t *testing.T) {
	m := New()

	m.ObserveRegistration("success", 20*time.Millisecond)
	m.ObserveRegistration("conflict", time.Millisecond)
	m.ObserveRegistration("conflict", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.registrations.WithLabelValues("conflict")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.registrations.WithLabelValues("internal")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestCounterExposition(t *testing.T) {
	m := New()
	m.ObserveRegistration("invalid", time.Millisecond)

	expected := `
# HELP devconnector_registrations_total Registration attempts by outcome.
# TYPE devconnector_registrations_total counter
devconnector_registrations_total{outcome="conflict"} 0
devconnector_registrations_total{outcome="internal"} 0
devconnector_registrations_total{outcome="invalid"} 1
devconnector_registrations_total{outcome="success"} 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "devconnector_registrations_total"))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRegistration("success", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `devconnector_registrations_total{outcome="success"} 1`)
	assert.Contains(t, string(body), "devconnector_registration_duration_seconds_count 1")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRegistration("success", time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.registrations.WithLabelValues("success")))
}

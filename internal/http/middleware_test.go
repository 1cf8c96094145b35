package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/product-catalog-api/internal/catalog"
	"github.com/fairyhunter13/product-catalog-api/internal/obs"
)

func captureLogs(t *testing.T) *logtest.Hook {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	prev := obs.Logger
	obs.Logger = logger
	t.Cleanup(func() { obs.Logger = prev })
	return hook
}

func TestWithLoggingFields(t *testing.T) {
	hook := captureLogs(t)
	h := WithRequestID(WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/pot", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "http_request", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "/pot", entry.Data["path"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, len("short and stout"), entry.Data["bytes"])
	assert.Equal(t, "req-42", entry.Data["request_id"])
}

func TestWithLoggingDefaultStatus(t *testing.T) {
	hook := captureLogs(t)
	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])
}

func TestWithRequestIDGenerates(t *testing.T) {
	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
}

func TestCheckoutNeverLogsErrors(t *testing.T) {
	hook := captureLogs(t)
	_, h := setupApp(t, testConfig(), catalog.Fixed())
	do(t, h, http.MethodPost, "/api/checkout", `{"not":"an array"}`)
	do(t, h, http.MethodPost, "/api/checkout", `[{"productId":1,"quantity":2}]`)

	var msgs []string
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, e.Level, e.Message)
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "checkout_rejected")
	assert.Contains(t, msgs, "checkout_validated")
}

func TestLogAndMetricsShareRoute(t *testing.T) {
	hook := captureLogs(t)
	app, h := setupApp(t, testConfig(), catalog.Fixed())
	rr := do(t, h, http.MethodGet, "/api/products/9", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "/api/products/{id}", entry.Data["route"])
	assert.Equal(t, "/api/products/9", entry.Data["path"])
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.Equal(t, float64(1), testutil.ToFloat64(app.Metrics.Requests.WithLabelValues("GET", "/api/products/{id}", "404")))
}

func TestLogOmitsRouteWhenUnmatched(t *testing.T) {
	hook := captureLogs(t)
	_, h := setupApp(t, testConfig(), catalog.Fixed())
	rr := do(t, h, http.MethodGet, "/nowhere", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.NotContains(t, entry.Data, "route")
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
}

func TestExchangeKeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ex := trackExchange(rr)
	assert.Same(t, ex, trackExchange(ex))

	_, _ = ex.Write([]byte("body"))
	ex.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusOK, ex.status)
	assert.Equal(t, 4, ex.written)
	assert.Equal(t, http.StatusOK, rr.Code)
}

package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/fairyhunter13/product-catalog-api/internal/obs"
)

type requestIDKey struct{}

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// exchange is the per-request record shared by the access log and the
// metrics middleware: whichever wraps the writer first owns it, the other
// reuses it, so both report the same status and route.
type exchange struct {
	http.ResponseWriter
	status  int
	written int
	route   string
	sent    bool
}

func trackExchange(w http.ResponseWriter) *exchange {
	if ex, ok := w.(*exchange); ok {
		return ex
	}
	return &exchange{ResponseWriter: w, status: http.StatusOK}
}

func (ex *exchange) WriteHeader(code int) {
	if !ex.sent {
		ex.status = code
		ex.sent = true
	}
	ex.ResponseWriter.WriteHeader(code)
}

func (ex *exchange) Write(b []byte) (int, error) {
	ex.sent = true
	n, err := ex.ResponseWriter.Write(b)
	ex.written += n
	return n, err
}

func (ex *exchange) Unwrap() http.ResponseWriter { return ex.ResponseWriter }

// routeOf is the mux path template for r, or its raw path when no route matched.
func routeOf(r *http.Request) string {
	if cur := mux.CurrentRoute(r); cur != nil {
		if tpl, err := cur.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID)))
	})
}

// WithLogging writes one http_request entry per request. The route field is
// only present when the request reached a registered route.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ex := trackExchange(w)
		next.ServeHTTP(ex, r)
		fields := logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ex.status,
			"bytes":      ex.written,
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"request_id": RequestIDFromContext(r.Context()),
		}
		if ex.route != "" {
			fields["route"] = ex.route
		}
		obs.Logger.WithFields(fields).Info("http_request")
	})
}

// WithMetrics records request counts and latency per route template. It is
// installed with Router.Use, so only matched routes are observed.
func WithMetrics(m *obs.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.InFlight.Inc()
			defer m.InFlight.Dec()

			start := time.Now()
			ex := trackExchange(w)
			ex.route = routeOf(r)
			next.ServeHTTP(ex, r)

			m.Requests.WithLabelValues(r.Method, ex.route, strconv.Itoa(ex.status)).Inc()
			m.LatencyMS.WithLabelValues(r.Method, ex.route).Observe(float64(time.Since(start).Microseconds()) / 1000.0)
		})
	}
}

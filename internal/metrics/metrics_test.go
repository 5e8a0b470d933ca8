package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(m *HTTP) *chi.Mux {
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/articles/{article_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/api/comments/{comment_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	reg := NewRegistry()
	m := NewHTTP(reg)
	router := newRouter(m)

	for _, path := range []string{"/api/articles/1", "/api/articles/2", "/api/articles/3"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/comments/1", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/articles/{article_id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodDelete, "/api/comments/{comment_id}", "204")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	reg := NewRegistry()
	m := NewHTTP(reg)
	router := newRouter(m)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
}

func TestHandler_ExposesRequestMetrics(t *testing.T) {
	reg := NewRegistry()
	m := NewHTTP(reg)
	router := newRouter(m)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/articles/1", nil))

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/api/articles/{article_id}",status="200"} 1`))
	assert.Contains(t, body, "go_goroutines")
}

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storytime/storygen/pkg/metrics"
)

func newRouter(m *metrics.Collector) chi.Router {
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/stories/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.Handle("/metrics", m.Handler())
	return r
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	m := metrics.NewCollector(metrics.Config{Namespace: "test"})
	r := newRouter(m)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stories/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	expected := `
# HELP test_http_requests_total Total number of HTTP requests by method, route and status code
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/stories/{id}",status="202"} 3
test_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_http_requests_total"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.Registry(), "test_http_request_duration_seconds"))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := metrics.NewCollector(metrics.Config{})
	r := newRouter(m)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stories/1", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `storygen_http_requests_total{method="GET",route="/stories/{id}",status="202"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMiddleware_PanickingHandler(t *testing.T) {
	t.Parallel()

	m := metrics.NewCollector(metrics.Config{Namespace: "test"})
	r := chi.NewRouter()
	r.Use(middleware.Recoverer, m.Middleware)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("story renderer exploded")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	expected := `
# HELP test_http_requests_total Total number of HTTP requests by method, route and status code
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/boom",status="500"} 1
# HELP test_http_requests_in_flight Number of HTTP requests currently being served
# TYPE test_http_requests_in_flight gauge
test_http_requests_in_flight 0
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"test_http_requests_total", "test_http_requests_in_flight"))
}

func TestNewCollector_Buckets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buckets []float64
		want    []string
		absent  []string
	}{
		{
			name:    "unsorted with duplicates",
			buckets: []float64{1, 0.5, 1},
			want:    []string{`le="0.5"`, `le="1"`, `le="+Inf"`},
			absent:  []string{`le="0.005"`},
		},
		{
			name:    "empty uses defaults",
			buckets: nil,
			want:    []string{`le="0.005"`, `le="10"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m *metrics.Collector
			require.NotPanics(t, func() {
				m = metrics.NewCollector(metrics.Config{Buckets: tt.buckets})
			})
			r := newRouter(m)
			require.NotPanics(t, func() {
				r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stories/1", nil))
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			var lines []string
			for line := range strings.SplitSeq(rec.Body.String(), "\n") {
				if strings.HasPrefix(line, "storygen_http_request_duration_seconds_bucket") {
					lines = append(lines, line)
				}
			}
			joined := strings.Join(lines, "\n")
			for _, le := range tt.want {
				assert.Contains(t, joined, le)
			}
			for _, le := range tt.absent {
				assert.NotContains(t, joined, le)
			}
		})
	}
}

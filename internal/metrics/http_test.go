package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/talents/{talentID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/talents/{talentID}", "418"))
	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/talents/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}
	after := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/talents/{talentID}", "418"))
	assert.Equal(t, before+2, after)
}

func TestHandlerExposesMetrics(t *testing.T) {
	RateLimited()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "masterneo_http_rate_limited_total")
}

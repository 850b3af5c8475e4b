package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Observe("category", 120, 30*time.Millisecond)
	r.Observe("category", 80, 10*time.Millisecond)
	r.Failure("state", "load")

	assert.InDelta(t, 2, testutil.ToFloat64(r.reports.WithLabelValues("category")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.failures.WithLabelValues("state", "load")), 0)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `techlympics_reports_total{kind="category"} 2`))
}

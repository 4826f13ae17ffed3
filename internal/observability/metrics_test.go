package observability

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/api/metas", "200", time.Millisecond)
	m.ApiInflightInc()
	m.ApiInflightDec()
	m.ObserveEntityOp("meta", "save", nil, false)
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 503, rec.Code)
}

func TestMetricsRecord(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/api/metas", "200", 20*time.Millisecond)
	m.ObserveAPI("GET", "/api/metas", "200", 30*time.Millisecond)
	m.ObserveEntityOp("meta", "partial_update", nil, true)
	m.ObserveEntityOp("meta", "save", errors.New("boom"), false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiRequests.WithLabelValues("/api/metas", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entityOps.WithLabelValues("meta", "partial_update", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entityOps.WithLabelValues("meta", "save", "error")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/metas",status="200"} 2`)
}

func TestSampleDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(3)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m := New()
	m.sampleDB(nil, db)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbStats.WithLabelValues("max_open_connections")))
}

func TestParseHeaders(t *testing.T) {
	assert.Nil(t, ParseHeaders(""))
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y"}, ParseHeaders("a=1, b=x=y, broken, =z"))
}

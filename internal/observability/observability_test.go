package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_Insights(t *testing.T) {
	m := NewMetrics()

	m.InsightsComputed(42, 15*time.Millisecond)
	m.InsightsComputed(80, 5*time.Millisecond)
	m.CollectionDegraded("goals")

	out := scrape(t, m)
	assert.Contains(t, out, "leverage_journal_insights_computations_total 2")
	assert.Contains(t, out, "leverage_journal_insights_momentum_score_count 2")
	assert.Contains(t, out, `leverage_journal_insights_degraded_collections_total{collection="goals"} 1`)
}

func TestMetrics_GinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/entries/:date", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/entries/2024-05-01", "/entries/2024-05-02", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := scrape(t, m)
	assert.Contains(t, out, `leverage_journal_http_requests_total{method="GET",route="/entries/:date",status="200"} 2`)
	assert.Contains(t, out, `route="unmatched",status="404"} 1`)
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(io.Discard)
		logrus.SetLevel(logrus.InfoLevel)
	})

	assert.Error(t, Setup("loud", "json", nil))

	var buf bytes.Buffer
	require.NoError(t, Setup("debug", "json", &buf))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("component", "test").Debug("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "test", line["component"])
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	require.NoError(t, Setup("info", "json", &buf))
	t.Cleanup(func() { logrus.SetOutput(io.Discard) })

	var seen string
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		seen = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusTeapot)
	})

	t.Run("Generates an id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, seen)
		assert.Contains(t, buf.String(), `"status":418`)
		assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	})

	t.Run("Propagates a caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", seen)
	})
}

func TestLoggerFromContext(t *testing.T) {
	entry := LoggerFromContext(WithRequestID(context.Background(), "abc"))
	assert.Equal(t, "abc", entry.Data["request_id"])

	plain := LoggerFromContext(context.Background())
	_, ok := plain.Data["request_id"]
	assert.False(t, ok)
}

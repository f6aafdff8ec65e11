package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numericore/mathsvc/internal/logging"
	"github.com/numericore/mathsvc/internal/monitoring"
	"github.com/numericore/mathsvc/internal/providers"
	"github.com/numericore/mathsvc/internal/service"
)

// Prometheus collectors register globally, so the handler set is built
// once for the whole test binary.
var testHandlers *Handlers

func router(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if testHandlers == nil {
		registry := service.NewRegistry()
		require.NoError(t, registry.Register(providers.NewMath()))
		testHandlers = NewHandlers(registry, monitoring.NewMetrics(), logging.NewDefault())
	}

	r := gin.New()
	r.GET("/", testHandlers.Root)
	r.GET("/health", testHandlers.Health)
	r.GET("/stats", testHandlers.Stats)
	r.GET("/services", testHandlers.ListServices)
	r.POST("/services/discover", testHandlers.DiscoverServices)
	r.POST("/services/execute", testHandlers.ExecuteService)
	return r
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootAndHealth(t *testing.T) {
	r := router(t)

	w := performJSON(t, r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestListServicesHandler(t *testing.T) {
	r := router(t)

	w := performJSON(t, r, "GET", "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	services := body["services"].([]interface{})
	require.Len(t, services, 1)

	// unknown category filters everything out
	w = performJSON(t, r, "GET", "/services?category=storage", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["services"])
}

func TestDiscoverServicesHandler(t *testing.T) {
	r := router(t)

	w := performJSON(t, r, "POST", "/services/discover", map[string]interface{}{
		"query": "hypergeometric math",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["services"])

	// missing query is a binding error
	w = performJSON(t, r, "POST", "/services/discover", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteServiceHandler(t *testing.T) {
	r := router(t)

	w := performJSON(t, r, "POST", "/services/execute", map[string]interface{}{
		"tool_id": "math.hyp0f1",
		"params":  map[string]interface{}{"v": 0.5, "z": 1.0},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	// malformed tool id
	w = performJSON(t, r, "POST", "/services/execute", map[string]interface{}{
		"tool_id": "hyp0f1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown service surfaces as an internal error
	w = performJSON(t, r, "POST", "/services/execute", map[string]interface{}{
		"tool_id": "nosuch.tool",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatsHandler(t *testing.T) {
	r := router(t)

	w := performJSON(t, r, "GET", "/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var snap monitoring.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.GreaterOrEqual(t, snap.UptimeSeconds, 0.0)
}

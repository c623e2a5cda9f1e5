package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capm-calculator/internal/config"
	"capm-calculator/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Presentation.ProcessingDelay = 0
	cfg.Server.StaticDir = filepath.Join(t.TempDir(), "nope")
	return cfg
}

func TestRouter_Health(t *testing.T) {
	r := NewRouter(testConfig(t), nil, logging.Silent())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_CalculateRoundTrip(t *testing.T) {
	r := NewRouter(testConfig(t), nil, logging.Silent())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", strings.NewReader(`{"unknown":"expected_return","risk_free_rate":2,"beta":1,"market_return":8}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"formatted":"8%"`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.CORSOrigins = []string{"http://localhost:5173"}
	r := NewRouter(cfg, nil, logging.Silent())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/calculate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_StaticFallback(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>capm</html>"), 0o644))
	cfg.Server.StaticDir = dir
	r := NewRouter(cfg, nil, logging.Silent())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/some/page", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "capm")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	r := NewRouter(testConfig(t), nil, logging.Silent())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
